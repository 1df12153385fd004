// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particles

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("particles", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://d3js.org/d3.v7.min.js"></script>
<style>
html, body { height: 100%; margin: 0; background: {{.Background}}; }
canvas { display: block; }
</style>
</head>
<body>
<canvas id="stage"></canvas>
<script>
var text = {{json .Text}},
    color = {{json .Color}},
    fontSize = {{json .FontSize}},
    radius = {{.Radius}},
    spacing = {{.Spacing}};

var canvas = document.getElementById("stage"),
    ctx = canvas.getContext("2d"),
    width = canvas.width = window.innerWidth,
    height = canvas.height = window.innerHeight;

// Rasterize the text offscreen and sample opaque pixels on a grid.
function targets() {
  var off = document.createElement("canvas");
  off.width = width;
  off.height = height;
  var octx = off.getContext("2d");
  octx.font = "bold " + fontSize + "px sans-serif";
  octx.textAlign = "center";
  octx.textBaseline = "middle";
  octx.fillText(text, width / 2, height / 2);
  var data = octx.getImageData(0, 0, width, height).data;

  var out = [];
  for (var y = 0; y < height; y += spacing) {
    for (var x = 0; x < width; x += spacing) {
      if (data[(y * width + x) * 4 + 3] > 128) {
        out.push({tx: x, ty: y});
      }
    }
  }
  return out;
}

var particles = targets().map(function(t) {
  return {
    x: Math.random() * width,
    y: Math.random() * height,
    vx: 0, vy: 0,
    tx: t.tx, ty: t.ty
  };
});

d3.timer(function() {
  ctx.clearRect(0, 0, width, height);
  ctx.fillStyle = color;
  particles.forEach(function(p) {
    p.vx = (p.vx + (p.tx - p.x) * 0.02) * 0.88;
    p.vy = (p.vy + (p.ty - p.y) * 0.02) * 0.88;
    p.x += p.vx;
    p.y += p.vy;
    ctx.beginPath();
    ctx.arc(p.x, p.y, radius, 0, 2 * Math.PI);
    ctx.fill();
  });
});

// A click scatters the cloud; the particles then re-form the text.
canvas.addEventListener("click", function() {
  particles.forEach(function(p) {
    p.vx += (Math.random() - 0.5) * 60;
    p.vy += (Math.random() - 0.5) * 60;
  });
});
</script>
</body>
</html>
`)
