/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the workshop server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/config"
	"github.com/domocarroll/subfracture-v3/internal/system/database/provider"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.GetLogger()

	serverHome := getServerHome(logger)
	cfg := initConfigurations(logger, serverHome)

	memoryCache := initCache(logger, cfg)

	mux := http.NewServeMux()
	registerServices(mux, cfg, memoryCache)

	server, serverAddr := createHTTPServer(logger, cfg, mux)

	serveErr := make(chan error, 1)
	go func() {
		if cfg.Server.HTTPOnly {
			logger.Info("TLS is not enabled, starting server without TLS")
			logger.Info("Workshop server started (HTTP)...", log.String("address", serverAddr))
			serveErr <- server.ListenAndServe()
		} else {
			certFile := path.Join(serverHome, cfg.Security.CertFile)
			keyFile := path.Join(serverHome, cfg.Security.KeyFile)
			logger.Info("Workshop server started (HTTPS)...", log.String("address", serverAddr))
			serveErr <- server.ListenAndServeTLS(certFile, keyFile)
		}
	}()

	awaitShutdown(logger, server, memoryCache, serveErr)
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using serverHome from command line argument",
			log.String("serverHome", *serverHomeFlag))
		return *serverHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the configurations and initializes the runtime.
func initConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}

	return cfg
}

// initCache constructs the in-memory cache from the configuration. Returns
// nil when caching is disabled.
func initCache(logger *log.Logger, cfg *config.Config) *cache.MemoryCache {
	if cfg.Cache.Disabled {
		logger.Warn("In-memory cache is disabled")
		return nil
	}

	sizeMB := cfg.Cache.SizeMB
	if sizeMB <= 0 {
		sizeMB = cache.DefaultMaxSizeMB
	}
	cleanupInterval := cfg.Cache.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = cache.DefaultCleanupIntervalSeconds
	}

	logger.Info("Initializing in-memory cache",
		log.Int("sizeMB", sizeMB), log.Int("cleanupInterval", cleanupInterval))
	return cache.New(sizeMB, cleanupInterval)
}

// createHTTPServer creates and configures the HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}

// awaitShutdown blocks until a termination signal or serve failure, then
// shuts the server down and releases the cache and database pools.
func awaitShutdown(
	logger *log.Logger, server *http.Server, memoryCache *cache.MemoryCache, serveErr chan error,
) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.Info("Shutdown signal received", log.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve requests", log.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down server gracefully", log.Error(err))
	}

	if memoryCache != nil {
		memoryCache.Close()
	}
	if err := provider.CloseClients(); err != nil {
		logger.Error("Failed to close database clients", log.Error(err))
	}

	logger.Info("Workshop server stopped")
}
