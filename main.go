// Command labyrinth runs the sliding-tile maze game.
//
// Three subcommands:
//  1. "serve" (default) - HTTP server exposing the REST API, WebSocket
//     spectating and an /mcp HTTP endpoint
//  2. "play" - interactive console game against AI opponents
//  3. "mcp" - MCP stdio server, reusing an external API if one is running
//     or spinning up an internal one on a loopback port
//
// Flags control host/port, player counts for console play, debug logging and
// optional ngrok tunneling for external access during development.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/gmarchal/labyrinth/api"
	"github.com/gmarchal/labyrinth/console"
	"github.com/gmarchal/labyrinth/game/service"
	"github.com/gmarchal/labyrinth/game/session"
	"github.com/gmarchal/labyrinth/transport/mcp"
	"github.com/gmarchal/labyrinth/transport/websocket"
)

const (
	Version = "1.0.0"
	AppName = "Labyrinth"
)

func main() {
	// Load .env if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cmd := &cli.Command{
		Name:    "labyrinth",
		Usage:   "sliding-tile maze game server and console client",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server with REST API, WebSocket and MCP endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "host",
						Value: "localhost",
						Usage: "HTTP server host",
					},
					&cli.IntFlag{
						Name:  "port",
						Value: 8080,
						Usage: "HTTP server port",
					},
					&cli.BoolFlag{
						Name:  "ngrok",
						Usage: "Enable ngrok tunnel",
					},
					&cli.StringFlag{
						Name:  "ngrok-auth",
						Usage: "Ngrok auth token (or use NGROK_AUTHTOKEN env var)",
					},
					&cli.StringFlag{
						Name:  "ngrok-domain",
						Usage: "Custom ngrok domain (optional)",
					},
				},
				Action: runServe,
			},
			{
				Name:  "play",
				Usage: "Play an interactive console game",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "players",
						Value: 2,
						Usage: "Total number of players (2-4)",
					},
					&cli.IntFlag{
						Name:  "humans",
						Value: 1,
						Usage: "Number of human seats; the rest are AI",
					},
				},
				Action: runPlay,
			},
			{
				Name:  "mcp",
				Usage: "Run an MCP stdio server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "api-url",
						Value: "http://localhost:8080",
						Usage: "External API server to reuse if reachable",
					},
				},
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// initializeServices wires the session manager and the game service, and
// starts the background routine that prunes stale sessions.
func initializeServices() service.GameService {
	sessionManager := session.NewManager()
	go sessionCleanupRoutine(sessionManager)
	return service.NewGameService(sessionManager)
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// newMainRouter mounts the API server at the root and an /mcp endpoint that
// feeds raw JSON-RPC messages to the MCP server.
func newMainRouter(apiServer *api.Server, mcpClient *mcp.Client) *http.ServeMux {
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)

	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	return mainRouter
}

// runServe starts the HTTP server. If ngrok is enabled (via flag or
// environment), it also provisions a public tunnel.
func runServe(ctx context.Context, cmd *cli.Command) error {
	gameService := initializeServices()

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))
	mainRouter := newMainRouter(apiServer, mcpClient)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("%s v%s listening on %s", AppName, Version, addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	ngrokShouldRun := cmd.Bool("ngrok")
	if !ngrokShouldRun {
		if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
			ngrokShouldRun = true
		}
	}

	if ngrokShouldRun {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(serveCtx, cmd, mainRouter)
		}()
	}

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runNgrokTunnel serves the main router through an ngrok tunnel until the
// context is cancelled.
func runNgrokTunnel(ctx context.Context, cmd *cli.Command, handler http.Handler) {
	authToken := cmd.String("ngrok-auth")
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth or NGROK_AUTHTOKEN)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	domain := cmd.String("ngrok-domain")
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Printf("Using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Printf("Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// runPlay creates a session and hands it to the console view on stdin/stdout.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	gameService := service.NewGameService(session.NewManager())

	info, err := gameService.CreateSession(ctx, int(cmd.Int("players")), int(cmd.Int("humans")))
	if err != nil {
		return err
	}

	fmt.Printf("%s v%s - session %s, %d players (%d human)\n\n",
		AppName, Version, info.ID, info.PlayerCount, info.HumanCount)

	return console.NewView(gameService, info.ID, os.Stdin, os.Stdout).Run(ctx)
}

// runMCP runs an MCP stdio server. It reuses an external API if one answers;
// otherwise it starts a minimal internal API on a random loopback port.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	externalURL := cmd.String("api-url")
	log.Printf("Checking for external API server at %s...", externalURL)

	var baseURL string
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := fmt.Sprintf("127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		gameService := initializeServices()
		hub := websocket.NewHub()
		go hub.Run()

		httpServer := &http.Server{Handler: api.NewServer(gameService, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Give the listener a moment before the first tool call.
		time.Sleep(100 * time.Millisecond)
		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Println("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
