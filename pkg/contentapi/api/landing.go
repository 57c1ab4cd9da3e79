package api

import (
	"net/http"
)

const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Content API</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      margin: 0;
      padding: 0;
      background-color: #f4f4f9;
      color: #333;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
    }
    .container { text-align: center; }
    h1 { font-size: 2.5rem; margin-bottom: 0.5rem; }
    p { font-size: 1.2rem; margin-bottom: 1rem; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Content API</h1>
    <h2>API Server</h2>
    <p>See <code>/contents</code> to get started.</p>
  </div>
</body>
</html>
`

// Landing serves a minimal HTML landing page at the root
func (h *ContentHandler) Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(landingPage))
}

// Health is a liveness check endpoint
func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
