package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/skamp931/frustum-viewer/engine/dashboard"
	"github.com/skamp931/frustum-viewer/engine/scene"
	"github.com/skamp931/frustum-viewer/engine/viewercfg"
)

func main() {
	configPath := flag.String("config", viewercfg.DefaultPath, "preferences file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	top := flag.Float64("top", 0, "top diameter in meters")
	bottom := flag.Float64("bottom", 0, "bottom diameter in meters")
	height := flag.Float64("height", 0, "height in meters")
	segments := flag.Int("segments", 0, "angular segments (>= 3)")
	flag.Parse()

	prefs, err := viewercfg.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	params := scene.Params{
		TopDiameter:    prefs.Dimensions.TopDiameter,
		BottomDiameter: prefs.Dimensions.BottomDiameter,
		Height:         prefs.Dimensions.Height,
		Segments:       prefs.Dimensions.Segments,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top":
			params.TopDiameter = *top
		case "bottom":
			params.BottomDiameter = *bottom
		case "height":
			params.Height = *height
		case "segments":
			params.Segments = *segments
		}
	})

	// Fail fast on unbuildable defaults instead of 400ing every request
	if _, err := params.Build(); err != nil {
		log.Fatal(err)
	}

	srv := dashboard.NewServer(dashboard.Options{
		Defaults: params,
		Color:    prefs.MeshColor,
		Opacity:  prefs.MeshOpacity,
	})

	listen := prefs.DashboardAddr
	if *addr != "" {
		listen = *addr
	}
	if listen == "" {
		listen = ":8080"
	}

	log.Printf("frustum dashboard listening on %s", listen)
	log.Fatal(http.ListenAndServe(listen, srv.Handler()))
}
