package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"addpath/internal/inspect"
	"addpath/internal/model"
	"addpath/internal/pathlist"
)

//go:embed static/*
var staticFS embed.FS

// StartServer serves the PATH inspection UI on localhost. target is the
// managed directory highlighted in the view.
func StartServer(target string) {
	mux := http.NewServeMux()

	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	mux.HandleFunc("/api/path", func(w http.ResponseWriter, r *http.Request) {
		handlePath(w, r, target)
	})

	port := "8080"
	fmt.Printf("Starting addpath web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe("localhost:"+port, mux); err != nil {
		log.Fatal().Err(err).Msg("web server stopped")
	}
}

func handlePath(w http.ResponseWriter, _ *http.Request, target string) {
	ins := inspect.Analyze(os.Getenv("PATH"), pathlist.Separator(), target)
	inspect.Attribute(&ins)

	response := struct {
		model.Inspection
		Report  string `json:"Report"`
		Version string `json:"Version"`
	}{
		Inspection: ins,
		Report:     inspect.GenerateReport(ins, true),
		Version:    model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Warn().Err(err).Msg("encoding /api/path response")
	}
}
