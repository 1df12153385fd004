// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomap

import "github.com/vizkit/vizkit/internal/htmlpage"

var pageTemplate = htmlpage.MustParse("geomap", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body { height: 100%; margin: 0; }
#map { height: 100%; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var markers = {{json .Markers}};

var map = L.map("map");
L.tileLayer({{json .Tiles}}, {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);

var bounds = [];
markers.forEach(function(m) {
  bounds.push([m.lat, m.lon]);
  L.circleMarker([m.lat, m.lon], {
    radius: m.size,
    color: m.color,
    fillColor: m.color,
    fillOpacity: 0.7,
    weight: 1
  }).bindPopup(m.label).addTo(map);
});
map.fitBounds(bounds, {padding: [30, 30], maxZoom: 10});
</script>
</body>
</html>
`)
