// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("movingbubbles", pageHTML)

// The page is self-contained: d3 comes from a CDN, all data is
// inlined, so the file renders from file:// with no companion fetch.
const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; color: #222; margin: 20px; }
#clock { font-size: 28px; font-variant-numeric: tabular-nums; }
#note { color: #777; max-width: 720px; }
.legend text { font-size: 12px; }
.speed button { margin-right: 4px; }
</style>
<script src="https://cdn.jsdelivr.net/npm/d3@7"></script>
</head>
<body>
<h2>{{.Title}}</h2>
<div class="speed">
{{range $name, $ms := .Speed}}<button onclick="setSpeed({{$ms}})">{{$name}}</button>{{end}}
<span id="clock">0 {{.UnitLabel}}</span>
</div>
<svg id="chart" width="900" height="600"></svg>
<p id="note">{{.Note}}</p>
<script>
var states = {{json .States}};
var series = {{json .Series}};
var nodeColors = {{json .NodeColors}};
var damper = {{.Damper}};
var tick = {{json .Speed}}["medium"] || 200;

// Cluster centers: states on a ring, the last state in the middle.
var width = 900, height = 600, ring = Math.min(width, height) / 3;
states.forEach(function(s, i) {
  if (i === states.length - 1) {
    s.cx = width / 2; s.cy = height / 2;
  } else {
    var a = 2 * Math.PI * i / Math.max(1, states.length - 1);
    s.cx = width / 2 + ring * Math.cos(a);
    s.cy = height / 2 + ring * Math.sin(a);
  }
});

// Each entity's schedule is a flat "stateID,duration,..." string.
var nodes = series.map(function(s) {
  var parts = s.data.split(",").map(Number);
  var schedule = [];
  for (var i = 0; i + 1 < parts.length; i += 2)
    schedule.push({state: parts[i], duration: parts[i + 1]});
  return {
    id: s.id, schedule: schedule, step: 0,
    remaining: schedule.length ? schedule[0].duration : 0,
    state: schedule.length ? schedule[0].state : 0,
    x: width / 2 + 200 * (Math.random() - 0.5),
    y: height / 2 + 200 * (Math.random() - 0.5)
  };
});

var svg = d3.select("#chart");
var legend = svg.append("g").attr("class", "legend");
states.forEach(function(s) {
  legend.append("text").attr("x", s.cx).attr("y", s.cy - 28)
    .attr("text-anchor", "middle").text(s.Label);
});

function fill(d) {
  if (nodeColors) return nodeColors[d.id];
  return states[d.state].Color;
}

var circles = svg.selectAll("circle").data(nodes).enter().append("circle")
  .attr("r", function(d) { return states[d.state].Size; })
  .attr("fill", fill)
  .attr("fill-opacity", function(d) { return states[d.state].Opacity; });

var sim = d3.forceSimulation(nodes)
  .force("x", d3.forceX(function(d) { return states[d.state].cx; }).strength(0.05 * damper))
  .force("y", d3.forceY(function(d) { return states[d.state].cy; }).strength(0.05 * damper))
  .force("collide", d3.forceCollide(function(d) { return states[d.state].Size + 1; }))
  .alphaDecay(0)
  .on("tick", function() {
    circles.attr("cx", function(d) { return d.x; })
           .attr("cy", function(d) { return d.y; })
           .attr("fill", fill);
  });

var elapsed = 0, timer = null;
function advance() {
  elapsed++;
  d3.select("#clock").text(elapsed + " {{.UnitLabel}}");
  nodes.forEach(function(d) {
    if (!d.schedule.length) return;
    d.remaining--;
    if (d.remaining <= 0) {
      d.step = (d.step + 1) % d.schedule.length;
      d.state = d.schedule[d.step].state;
      d.remaining = d.schedule[d.step].duration;
    }
  });
  sim.alpha(0.5).restart();
}
function setSpeed(ms) {
  tick = ms;
  if (timer) timer.stop();
  timer = d3.interval(advance, tick);
}
setSpeed(tick);
</script>
</body>
</html>
`
