// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imageslider

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("imageslider", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; background: #111; color: #eee; }
h1 { font-size: 16px; margin: 12px 16px; }
.frame {
  position: relative;
  width: {{.Width}}px;
  height: {{.Height}}px;
  margin: 0 auto;
  overflow: hidden;
  user-select: none;
}
.frame img {
  position: absolute;
  top: 0; left: 0;
  width: {{.Width}}px;
  height: {{.Height}}px;
  pointer-events: none;
}
.clip { position: absolute; top: 0; left: 0; height: 100%; width: 50%; overflow: hidden; }
.divider {
  position: absolute;
  top: 0;
  left: 50%;
  width: 4px;
  height: 100%;
  margin-left: -2px;
  background: #fff;
  cursor: ew-resize;
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="frame" id="frame">
  <img src="{{.After}}" alt="after">
  <div class="clip" id="clip"><img src="{{.Before}}" alt="before"></div>
  <div class="divider" id="divider"></div>
</div>
<script>
var frame = document.getElementById("frame"),
    clip = document.getElementById("clip"),
    divider = document.getElementById("divider"),
    dragging = false;

function moveTo(clientX) {
  var rect = frame.getBoundingClientRect();
  var x = Math.min(Math.max(clientX - rect.left, 0), rect.width);
  clip.style.width = x + "px";
  divider.style.left = x + "px";
}

frame.addEventListener("mousedown", function(e) { dragging = true; moveTo(e.clientX); });
window.addEventListener("mousemove", function(e) { if (dragging) moveTo(e.clientX); });
window.addEventListener("mouseup", function() { dragging = false; });
frame.addEventListener("touchmove", function(e) { moveTo(e.touches[0].clientX); });
</script>
</body>
</html>
`)
