/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements the AutomationML Link Service server.
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/api"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/persistence"
	openapi "github.com/eclipse-basyx/basyx-go-amllink/pkg/amllinkapi/go"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
)

//go:embed openapi.yaml
var openapiSpec embed.FS

func runServer(ctx context.Context, configPath string) error {
	log.Default().Println("Loading AutomationML Link Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	common.PrintSplash()

	r := chi.NewRouter()

	common.AddCors(r, cfg)
	common.AddHealthEndpoint(r, cfg)

	if cfg.Swagger.Enabled {
		if err := common.AddSwaggerUIFromFS(r, openapiSpec, "openapi.yaml", cfg); err != nil {
			log.Printf("Warning: failed to load OpenAPI spec for Swagger UI: %v", err)
		}
	}

	submodels, err := persistence.NewSubmodelStore(ctx, cfg.Persistence)
	if err != nil {
		log.Printf("❌ Submodel store init failed: %v", err)
		return err
	}
	defer func() {
		if err := submodels.Close(context.Background()); err != nil {
			log.Printf("Failed to close submodel store: %v", err)
		}
	}()
	log.Printf("✅ Submodel store ready (backend=%q)", cfg.Persistence.Backend)

	files, err := filestore.New(ctx, cfg.FileStore)
	if err != nil {
		log.Printf("❌ File store init failed: %v", err)
		return err
	}
	log.Printf("✅ File store ready (backend=%q)", cfg.FileStore.Backend)

	amlSvc := api.NewAmlLinkAPIAPIService(submodels, files, cfg.AML, afero.NewOsFs())
	amlCtrl := openapi.NewAmlLinkAPIAPIController(amlSvc, cfg.Server.ContextPath)
	r.Mount("/", openapi.NewRouter(amlCtrl))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("▶️  AutomationML Link Service listening on %s (contextPath=%q)\n", addr, cfg.Server.ContextPath)

	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
