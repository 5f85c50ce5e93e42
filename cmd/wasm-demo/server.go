// Command wasm-demo serves the triangle page for local development.
//
//	GOOS=js GOARCH=wasm go build -o cmd/wasm-demo/main.wasm ./cmd/triangle
//	go run ./cmd/wasm-demo
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	baseDir := flag.String("dir", filepath.Join("cmd", "wasm-demo"), "directory with index.html and main.wasm")
	flag.Parse()

	srv := &http.Server{Addr: *addr, Handler: logRequests(newHandler(*baseDir, runtime.GOROOT()))}

	go func() {
		log.Printf("Serving %s on http://localhost%s", *baseDir, *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown Failed:%+v", err)
	}

	log.Println("Server stopped")
}

// newHandler serves baseDir. wasm_exec.js comes from the Go installation
// when baseDir has no copy, so a fresh checkout only needs main.wasm.
func newHandler(baseDir, goroot string) http.Handler {
	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(baseDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(baseDir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	})
	mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range wasmExecCandidates(baseDir, goroot) {
			if _, err := os.Stat(p); err == nil {
				http.ServeFile(w, r, p)
				return
			}
		}
		http.NotFound(w, r)
	})
	return mux
}

func wasmExecCandidates(baseDir, goroot string) []string {
	out := []string{filepath.Join(baseDir, "wasm_exec.js")}
	if goroot != "" {
		out = append(out,
			filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"),
			filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"),
		)
	}
	return out
}

func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
