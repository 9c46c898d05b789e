package cli

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/catalog"
	"github.com/wallery/wallery/pkg/fonts"
	"github.com/wallery/wallery/pkg/render"
	"github.com/wallery/wallery/pkg/wall"
)

// newServeCmd creates the serve command, a read-only web preview of the
// walls. Each request rehydrates the snapshot, so edits made with the
// other commands appear on refresh.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		port    string
		images  bool
		plaques bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only web preview of the walls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath, port, images, plaques)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8787", "port to listen on")
	cmd.Flags().BoolVar(&images, "images", false, "embed catalog image URLs instead of placeholder boxes")
	cmd.Flags().BoolVar(&plaques, "plaques", false, "draw museum plaques under each artwork")

	return cmd
}

func runServe(ctx context.Context, configPath, port string, images, plaques bool) error {
	logger := loggerFromContext(ctx)

	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &previewServer{app: a, images: images, plaques: plaques}

	addr := ":" + port
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("preview available", "url", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	printInfo("Serving the walls on http://localhost%s (ctrl-c to stop)", addr)

	select {
	case <-ctx.Done():
		logger.Info("shutting down preview")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// previewServer renders persisted snapshots over HTTP. It never mutates
// them.
type previewServer struct {
	app     *app
	images  bool
	plaques bool
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/rooms/{room}", s.handleRoom)
	r.Get("/rooms/{room}/wall.svg", s.handleWallSVG)
	r.Get("/api/rooms/{room}", s.handleRoomJSON)
	r.Get("/api/catalog", s.handleCatalog)
	r.Get("/healthz", s.handleHealth)

	return r
}

// logRequests logs every request at debug level.
func (s *previewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.app.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// snapshot rehydrates the persisted wall state.
func (s *previewServer) snapshot(ctx context.Context) (*wall.State, error) {
	state := wall.NewState(s.app.store, s.app.logger)
	if err := state.Load(ctx); err != nil {
		return nil, err
	}
	return state, nil
}

// sceneOf captures a room from a hydrated state with the configured
// wall color applied.
func (s *previewServer) sceneOf(state *wall.State, room wall.Room) wall.Scene {
	engine := wall.NewEngine(state, s.app.cfg.Geometry(), s.app.catalog, s.app.logger)
	scene := engine.SceneFor(room)
	scene.WallColor = s.app.cfg.WallColor(room)
	return scene
}

// renderRoom produces the SVG bytes for one room.
func (s *previewServer) renderRoom(state *wall.State, room wall.Room) []byte {
	opts := []render.SVGOption{render.WithFurniture()}
	if s.images {
		opts = append(opts, render.WithImageHrefs())
	}
	if s.plaques {
		opts = append(opts, render.WithPlaques())
	}
	return render.SVG(s.sceneOf(state, room), opts...)
}

// parseRoomParam resolves the {room} URL parameter.
func parseRoomParam(r *http.Request) (wall.Room, error) {
	return wall.ParseRoom(chi.URLParam(r, "room"))
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/rooms/"+string(state.ActiveRoom()), http.StatusFound)
}

func (s *previewServer) handleRoom(w http.ResponseWriter, r *http.Request) {
	room, err := parseRoomParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	state, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	appearance := state.Prefs().Appearance
	data := pageData{
		Room:       room,
		Other:      room.Other(),
		Active:     state.ActiveRoom() == room,
		Hung:       len(state.Collection(room)),
		FontFamily: template.CSS(fonts.Family),
		PageBG:     template.CSS("#faf8f4"),
		PageFG:     template.CSS("#2b2b2b"),
		Wall:       template.HTML(s.renderRoom(state, room)),
	}
	if appearance == wall.AppearanceDark {
		data.PageBG = template.CSS("#171412")
		data.PageFG = template.CSS("#e8e4de")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.app.logger.Error("render page", "err", err)
	}
}

func (s *previewServer) handleWallSVG(w http.ResponseWriter, r *http.Request) {
	room, err := parseRoomParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	state, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(s.renderRoom(state, room))
}

// roomResponse is the JSON shape of one room's wall.
type roomResponse struct {
	Room       wall.Room        `json:"room"`
	Active     bool             `json:"active"`
	Appearance string           `json:"appearance"`
	WallColor  string           `json:"wall_color,omitempty"`
	Placements []placementEntry `json:"placements"`
}

// placementEntry is a placement annotated with catalog metadata.
type placementEntry struct {
	wall.Placement
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
}

func (s *previewServer) handleRoomJSON(w http.ResponseWriter, r *http.Request) {
	room, err := parseRoomParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	state, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	collection := state.Collection(room)
	resp := roomResponse{
		Room:       room,
		Active:     state.ActiveRoom() == room,
		Appearance: state.Prefs().Appearance,
		WallColor:  s.app.cfg.WallColor(room),
		Placements: make([]placementEntry, 0, len(collection)),
	}
	for _, p := range collection {
		entry := placementEntry{Placement: p}
		if art, ok := s.app.catalog.Get(p.ArtworkID); ok {
			entry.Title = art.Title
			entry.Artist = art.Artist
		}
		resp.Placements = append(resp.Placements, entry)
	}
	writeJSON(w, resp)
}

// catalogEntry is an artwork annotated with where it currently hangs.
type catalogEntry struct {
	catalog.Artwork
	PlacedIn wall.Room `json:"placed_in,omitempty"`
}

func (s *previewServer) handleCatalog(w http.ResponseWriter, r *http.Request) {
	state, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	artworks := s.app.catalog.Artworks()
	entries := make([]catalogEntry, 0, len(artworks))
	for _, art := range artworks {
		entry := catalogEntry{Artwork: art}
		if room, ok := state.PlacedRoom(art.ID); ok {
			entry.PlacedIn = room
		}
		entries = append(entries, entry)
	}
	writeJSON(w, entries)
}

func (s *previewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK"))
}

// writeJSON encodes a response body. Encode failures are not reported
// since the connection is already half-written.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// pageData feeds the room page template.
type pageData struct {
	Room       wall.Room
	Other      wall.Room
	Active     bool
	Hung       int
	FontFamily template.CSS
	PageBG     template.CSS
	PageFG     template.CSS
	Wall       template.HTML
}

var pageTmpl = template.Must(template.New("room").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>wallery · {{.Room}}</title>
<style>
body { margin: 0; padding: 24px; background: {{.PageBG}}; color: {{.PageFG}}; font-family: {{.FontFamily}}; }
nav { margin-bottom: 16px; }
nav a { color: inherit; margin-right: 12px; text-decoration: none; opacity: 0.6; }
nav a.current { opacity: 1; font-weight: 600; border-bottom: 2px solid currentColor; }
main svg { max-width: 100%; height: auto; box-shadow: 0 2px 16px rgba(0,0,0,0.12); }
footer { margin-top: 12px; font-size: 13px; opacity: 0.6; }
</style>
</head>
<body>
<nav>
<a href="/rooms/{{.Room}}" class="current">{{.Room}}</a>
<a href="/rooms/{{.Other}}">{{.Other}}</a>
</nav>
<main>{{.Wall}}</main>
<footer>{{.Hung}} hung{{if .Active}} · active room{{end}} · refresh to pick up changes</footer>
</body>
</html>
`))
