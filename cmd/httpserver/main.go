package main

import (
    "flag"
    "log"
    "os"
    "os/signal"
    "syscall"

    "github.com/xaitan80/rawhttp/internal/router"
    "github.com/xaitan80/rawhttp/internal/server"
)

func main() {
    addr := flag.String("addr", "0.0.0.0:4221", "address to listen on")
    directory := flag.String("directory", os.TempDir(), "directory for /files/ routes")
    flag.Parse()

    cfg := router.Config{Directory: *directory}
    rt := router.New(cfg)

    srv, err := server.Serve(*addr, rt.Dispatch)
    if err != nil {
        log.Fatalf("Error starting server: %v", err)
    }
    defer srv.Close()
    log.Printf("Server started on %s, serving files from %s", srv.Addr(), cfg.Directory)

    sigChan := make(chan os.Signal, 1)
    signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
    <-sigChan
    log.Println("Server gracefully stopped")
}
