// Package pkg provides the core libraries for the Wallery virtual art wall.
//
// # Overview
//
// Wallery hangs artworks from a catalog onto the walls of two virtual rooms
// (a gallery and a bedroom), lets the user drag them around, frame them, and
// keeps each room's arrangement across sessions. The pkg directory is
// organized into four main areas:
//
//  1. [wall] - Domain logic (rooms, placements, geometry, the interaction engine)
//  2. [catalog] / [tape] - Input handling (artwork metadata, tape color sampling)
//  3. [snapshot] / [cache] - Persistence (room snapshots, sampled-color cache)
//  4. [render] - Output (SVG scenes, PDF/PNG conversion)
//
// # Architecture
//
// The typical data flow through Wallery:
//
//	Catalog (TOML/JSON)
//	         ↓
//	    [tape] package (sample image, derive tape color)
//	         ↓
//	    [wall] package (place, drag, frame, decorate)
//	         ↓
//	    [snapshot] package (persist each room on every mutation)
//	         ↓
//	    [render] package (scene → SVG/PDF/PNG)
//
// # Quick Start
//
// Place an artwork and render the room:
//
//	import (
//	    "context"
//	    "github.com/wallery/wallery/pkg/catalog"
//	    "github.com/wallery/wallery/pkg/render"
//	    "github.com/wallery/wallery/pkg/snapshot"
//	    "github.com/wallery/wallery/pkg/tape"
//	    "github.com/wallery/wallery/pkg/wall"
//	)
//
//	// 1. Load the catalog and the persisted rooms
//	cat, _ := catalog.Sample()
//	store, _ := snapshot.Open(ctx, snapshot.Options{Backend: snapshot.BackendMemory})
//	state := wall.NewState(store, nil)
//	_ = state.Load(ctx)
//
//	// 2. Decorate and place
//	rng := wall.NewRand(42)
//	art, _ := cat.Get("starry-night")
//	deco := wall.Decorate(rng, tape.Fallback)
//	engine := wall.NewEngine(state, wall.DefaultGeometry(), cat, nil)
//	engine.Place(art, wall.DefaultPlacePosition, deco)
//
//	// 3. Render to SVG
//	svg := render.SVG(engine.Scene(), render.WithFurniture())
//
// # Main Packages
//
// ## Domain Logic
//
// [wall] - The placement domain. Rooms, frames, wall geometry (header band,
// furniture band, display-box scaling, clamping), placement records with
// frozen decoration attributes, per-room state with persist-per-mutation,
// and the interaction engine (place, drag, frame, remove, room switch).
//
// [catalog] - Immutable artwork catalog loaded from TOML or JSON, with a
// flexible Year scalar that round-trips string and numeric forms. A small
// built-in sample catalog ships with the binary.
//
// [tape] - Tape color resolution. Samples a pixel block near the image's
// top-left corner (PNG, JPEG, GIF, WebP), then derives a bright washi-tape
// color from the sampled hue, falling back to a fixed palette or a fixed
// pink when the image gives no usable hue. Never fails; every path yields
// a displayable color.
//
// ## Persistence
//
// [snapshot] - Room snapshot stores: one JSON file per room for the CLI
// (FileStore), Redis and MongoDB backends for shared deployments, and an
// in-memory store for tests and ephemeral runs.
//
// [cache] - Content-addressed byte cache under the XDG cache dir. Keeps
// sampled base colors and fetched image bytes so repeated placements skip
// the fetch and decode work.
//
// ## Output
//
// [render] - Pure scene rendering. SVG with functional options (furniture,
// plaques, image hrefs), PDF and PNG conversion via rsvg-convert.
//
// ## Supporting Packages
//
// [config] - TOML configuration (canvas, rooms, tape palette, storage
// backend) with WALLERY_* environment overrides and validated defaults.
//
// [errors] - Coded structured errors shared by the CLI and the preview
// server, plus input validation helpers.
//
// [httputil] - Retrying HTTP fetch client for remote artwork images, with
// response size caps and cache integration.
//
// [fonts] - Shared font stacks for SVG text and the HTML preview page.
//
// [buildinfo] - Version identity injected at build time via ldflags.
//
// # Common Workflows
//
// Load a custom catalog:
//
//	cat, _ := catalog.Load("my-collection.toml")
//
// Resolve a tape color with caching:
//
//	resolver := tape.NewResolver(fileCache, nil)
//	deco := wall.Decorate(rng, resolver.Pick(ctx, art.Image, rng))
//
// Switch rooms and persist the preference:
//
//	engine.SwitchRoom(wall.RoomBedroom)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/wall/...      # Specific package
//	go test -run Example        # Examples only
//
// [wall]: https://pkg.go.dev/github.com/wallery/wallery/pkg/wall
// [catalog]: https://pkg.go.dev/github.com/wallery/wallery/pkg/catalog
// [tape]: https://pkg.go.dev/github.com/wallery/wallery/pkg/tape
// [snapshot]: https://pkg.go.dev/github.com/wallery/wallery/pkg/snapshot
// [cache]: https://pkg.go.dev/github.com/wallery/wallery/pkg/cache
// [render]: https://pkg.go.dev/github.com/wallery/wallery/pkg/render
// [config]: https://pkg.go.dev/github.com/wallery/wallery/pkg/config
// [errors]: https://pkg.go.dev/github.com/wallery/wallery/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/wallery/wallery/pkg/httputil
// [fonts]: https://pkg.go.dev/github.com/wallery/wallery/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/wallery/wallery/pkg/buildinfo
package pkg
