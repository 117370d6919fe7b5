// Package dashboard serves the frustum as a browser dashboard: an HTML page
// that hands the mesh's flat coordinate and index arrays to Plotly's Mesh3d
// renderer, next to a text summary of the chosen dimensions.
package dashboard

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/skamp931/frustum-viewer/engine/scene"
)

// Options configure the dashboard
type Options struct {
	Defaults scene.Params
	Color    string // CSS color handed to the plot
	Opacity  float64
}

// Server answers the dashboard page and its mesh API
type Server struct {
	opts Options
	mux  *http.ServeMux
}

func NewServer(opts Options) *Server {
	if opts.Color == "" {
		opts.Color = "#add8e6"
	}
	if opts.Opacity == 0 {
		opts.Opacity = 0.9
	}
	s := &Server{opts: opts, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/mesh", s.handleMesh)
	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// meshPayload is the wire form of a built mesh plus its display metadata:
// parallel x/y/z vertex arrays and i/j/k triangle index arrays, the shape
// Mesh3d-style renderers consume.
type meshPayload struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
	I []int     `json:"i"`
	J []int     `json:"j"`
	K []int     `json:"k"`

	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`

	Title   string   `json:"title"`
	Summary []string `json:"summary"`

	// Axis ranges computed from the mesh extent plus a margin
	XRange [2]float64 `json:"x_range"`
	YRange [2]float64 `json:"y_range"`
	ZRange [2]float64 `json:"z_range"`

	VertexCount int  `json:"vertex_count"`
	FaceCount   int  `json:"face_count"`
	Watertight  bool `json:"watertight"`
}

func (s *Server) handleMesh(w http.ResponseWriter, r *http.Request) {
	params, err := s.paramsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sc, err := scene.New(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := sc.Mesh()
	xs, ys, zs, is, js, ks := m.Arrays()

	b := m.Bounds()
	margin := math.Max(0.5, b.Size().Len()*0.1)
	pb := b.Pad(margin)

	payload := meshPayload{
		X: xs, Y: ys, Z: zs,
		I: is, J: js, K: ks,
		Color:       s.opts.Color,
		Opacity:     s.opts.Opacity,
		Title:       params.Title(),
		Summary:     sc.Summary(),
		XRange:      [2]float64{pb.Min.X, pb.Max.X},
		YRange:      [2]float64{pb.Min.Y, pb.Max.Y},
		ZRange:      [2]float64{pb.Min.Z, pb.Max.Z},
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		Watertight:  m.Watertight(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// paramsFromQuery overlays query parameters on the configured defaults:
// top, bottom (diameters), height, segments, cx, cy, cz.
func (s *Server) paramsFromQuery(r *http.Request) (scene.Params, error) {
	p := s.opts.Defaults
	q := r.URL.Query()

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"top", &p.TopDiameter},
		{"bottom", &p.BottomDiameter},
		{"height", &p.Height},
		{"cx", &p.Center.X},
		{"cy", &p.Center.Y},
		{"cz", &p.Center.Z},
	} {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("dashboard: bad %s %q", f.key, v)
		}
		*f.dst = parsed
	}

	if v := q.Get("segments"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("dashboard: bad segments %q", v)
		}
		p.Segments = parsed
	}
	return p, nil
}
