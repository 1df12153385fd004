// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chord

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("chord", pageHTML)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; color: #222; margin: 20px; }
.group text { font-size: 12px; }
.ribbon { fill-opacity: 0.72; }
.ribbon:hover { fill-opacity: 1; }
</style>
<script src="https://cdn.jsdelivr.net/npm/d3@7"></script>
</head>
<body>
<h2>{{.Title}}</h2>
<svg id="chart" width="760" height="760"></svg>
<script>
var labels = {{json .Labels}};
var matrix = {{json .Matrix}};

var width = 760, height = 760;
var outer = Math.min(width, height) * 0.5 - 50;
var inner = outer - 18;

var chord = d3.chord().padAngle(0.04).sortSubgroups(d3.descending)(matrix);
var svg = d3.select("#chart").append("g")
  .attr("transform", "translate(" + width / 2 + "," + height / 2 + ")");

var group = svg.append("g").selectAll("g").data(chord.groups).enter().append("g")
  .attr("class", "group");

group.append("path")
  .attr("d", d3.arc().innerRadius(inner).outerRadius(outer))
  .attr("fill", function(d) { return labels[d.index].Color; });

group.append("text")
  .each(function(d) { d.angle = (d.startAngle + d.endAngle) / 2; })
  .attr("transform", function(d) {
    return "rotate(" + (d.angle * 180 / Math.PI - 90) + ")" +
      "translate(" + (outer + 6) + ")" + (d.angle > Math.PI ? "rotate(180)" : "");
  })
  .attr("text-anchor", function(d) { return d.angle > Math.PI ? "end" : null; })
  .text(function(d) { return labels[d.index].Label; });

svg.append("g").selectAll("path").data(chord).enter().append("path")
  .attr("class", "ribbon")
  .attr("d", d3.ribbon().radius(inner))
  .attr("fill", function(d) { return labels[d.target.index].Color; })
  .append("title")
  .text(function(d) {
    return labels[d.source.index].Label + " → " +
      labels[d.target.index].Label + ": " + d.source.value;
  });
</script>
</body>
</html>
`
