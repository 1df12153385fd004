// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("violin", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://d3js.org/d3.v7.min.js"></script>
<style>
body { font-family: sans-serif; margin: 0; }
h1 { font-size: 16px; margin: 12px 16px; }
.axis text { font-size: 11px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="chart"></div>
<script>
var series = {{json .Series}};

var margin = {top: 10, right: 30, bottom: 40, left: 50},
    width = Math.max(640, series.length * 110) - margin.left - margin.right,
    height = 480 - margin.top - margin.bottom;

var svg = d3.select("#chart").append("svg")
    .attr("width", width + margin.left + margin.right)
    .attr("height", height + margin.top + margin.bottom)
  .append("g")
    .attr("transform", "translate(" + margin.left + "," + margin.top + ")");

var x = d3.scaleBand()
    .domain(series.map(function(s) { return s.label; }))
    .range([0, width])
    .padding(0.15);

var y = d3.scaleLinear()
    .domain([
      d3.min(series, function(s) { return d3.min(s.values); }),
      d3.max(series, function(s) { return d3.max(s.values); })
    ]).nice()
    .range([height, 0]);

var dmax = d3.max(series, function(s) { return d3.max(s.dens); });

svg.append("g").attr("class", "axis")
    .attr("transform", "translate(0," + height + ")")
    .call(d3.axisBottom(x));
svg.append("g").attr("class", "axis").call(d3.axisLeft(y));

series.forEach(function(s) {
  var half = x.bandwidth() / 2;
  var xc = x(s.label) + half;
  var dx = d3.scaleLinear().domain([0, dmax]).range([0, half]);

  var area = d3.area()
      .x0(function(d, i) { return xc - dx(s.dens[i]); })
      .x1(function(d, i) { return xc + dx(s.dens[i]); })
      .y(function(d) { return y(d); })
      .curve(d3.curveCatmullRom);

  svg.append("path")
      .datum(s.values)
      .attr("fill", s.color)
      .attr("fill-opacity", 0.75)
      .attr("stroke", "#333")
      .attr("stroke-width", 0.5)
      .attr("d", area);
});
</script>
</body>
</html>
`)
