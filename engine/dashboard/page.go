package dashboard

// indexPage is the dashboard shell. All geometry comes from /api/mesh;
// the page only feeds the arrays to Plotly and prints the summary.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Frustum Viewer</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
  body { font-family: sans-serif; margin: 0; background: #11131c; color: #d5d9e6; }
  h1 { font-size: 1.2em; margin: 0.6em 1em; }
  #plot { width: 100%; height: 70vh; }
  #summary { margin: 1em; padding: 0.8em 1em; background: #1b2030; border: 1px solid #2d3650;
             border-radius: 6px; white-space: pre; font-family: monospace; }
  #error { margin: 1em; color: #ff8080; font-family: monospace; }
</style>
</head>
<body>
<h1>Frustum Viewer</h1>
<div id="plot"></div>
<div id="summary"></div>
<div id="error"></div>
<script>
fetch('/api/mesh' + window.location.search)
  .then(resp => {
    if (!resp.ok) { return resp.text().then(t => { throw new Error(t); }); }
    return resp.json();
  })
  .then(mesh => {
    Plotly.newPlot('plot', [{
      type: 'mesh3d',
      x: mesh.x, y: mesh.y, z: mesh.z,
      i: mesh.i, j: mesh.j, k: mesh.k,
      color: mesh.color,
      opacity: mesh.opacity,
      name: 'frustum'
    }], {
      title: { text: mesh.title },
      paper_bgcolor: '#11131c',
      font: { color: '#d5d9e6' },
      scene: {
        xaxis: { title: 'X (m)', range: mesh.x_range },
        yaxis: { title: 'Y (m)', range: mesh.y_range },
        zaxis: { title: 'Z (m)', range: mesh.z_range },
        aspectmode: 'data'
      },
      margin: { l: 0, r: 0, b: 0, t: 40 }
    });
    document.getElementById('summary').textContent = mesh.summary.join('\n');
  })
  .catch(err => {
    document.getElementById('error').textContent = err.message;
  });
</script>
</body>
</html>
`
