//nolint:revive
package common

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerUIConfig holds configuration for the Swagger UI endpoints.
type SwaggerUIConfig struct {
	UIPath      string         // Path where Swagger UI will be served (e.g., "/swagger")
	SpecPath    string         // Path where spec will be served (e.g., "/api-docs/openapi.yaml")
	SpecContent []byte         // The OpenAPI spec content
	ServerURL   string         // Server URL written into the spec
	Contact     *ContactConfig // Contact information written into the spec
}

// ContactConfig holds contact information for OpenAPI spec
type ContactConfig struct {
	Name  string
	Email string
	URL   string
}

var (
	serversSection = regexp.MustCompile(`(?ms)^servers:\s*\n((?:[ \t]*-[^\n]*\n?|[ \t]+[^\n]*\n?)*)`)
	pathsSection   = regexp.MustCompile(`(?m)^(paths:)`)
	contactSection = regexp.MustCompile(`(?m)^  contact:\s*\n((?:    [^\n]*\n?)*)`)
	titleLine      = regexp.MustCompile(`(?m)^(  title:[^\n]*\n)`)
)

// injectServerURL replaces (or inserts before paths:) the servers section of a YAML spec.
func injectServerURL(specContent []byte, serverURL string) []byte {
	if serverURL == "" {
		return specContent
	}
	servers := fmt.Sprintf("servers:\n- url: '%s'\n  description: Auto-configured server\n", serverURL)
	if serversSection.Match(specContent) {
		return serversSection.ReplaceAll(specContent, []byte(servers))
	}
	if pathsSection.Match(specContent) {
		return pathsSection.ReplaceAll(specContent, []byte(servers+"$1"))
	}
	return append([]byte(servers), specContent...)
}

// injectContact replaces (or inserts after the title) the info.contact block.
func injectContact(specContent []byte, contact *ContactConfig) []byte {
	if contact == nil {
		return specContent
	}
	lines := []string{"  contact:"}
	if contact.Name != "" {
		lines = append(lines, "    name: "+contact.Name)
	}
	if contact.Email != "" {
		lines = append(lines, "    email: "+contact.Email)
	}
	if contact.URL != "" {
		lines = append(lines, "    url: "+contact.URL)
	}
	block := strings.Join(lines, "\n") + "\n"
	if contactSection.Match(specContent) {
		return contactSection.ReplaceAll(specContent, []byte(block))
	}
	return titleLine.ReplaceAll(specContent, []byte("$1"+block))
}

// AddSwaggerUI serves the spec at cfg.SpecPath and the swaggo UI below cfg.UIPath.
func AddSwaggerUI(r *chi.Mux, cfg SwaggerUIConfig) {
	specContent := injectContact(injectServerURL(cfg.SpecContent, cfg.ServerURL), cfg.Contact)

	r.Get(cfg.SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(specContent)
	})

	uiPath := strings.TrimSuffix(cfg.UIPath, "/")
	r.Get(uiPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, uiPath+"/index.html", http.StatusFound)
	})
	r.Get(uiPath+"/*", httpSwagger.Handler(httpSwagger.URL(cfg.SpecPath)))

	log.Printf("📖 Swagger UI available at %s", uiPath)
	log.Printf("📄 OpenAPI spec available at %s", cfg.SpecPath)
}

// AddSwaggerUIFromFS reads the spec from an embedded filesystem and registers
// the Swagger endpoints below the configured context path.
func AddSwaggerUIFromFS(r *chi.Mux, specFS embed.FS, specFile string, config *Config) error {
	content, err := fs.ReadFile(specFS, specFile)
	if err != nil {
		return err
	}

	host := config.Server.Host
	if host == "0.0.0.0" || host == "" {
		host = "localhost"
	}
	contextPath := strings.TrimSuffix(config.Server.ContextPath, "/")
	if contextPath != "" && !strings.HasPrefix(contextPath, "/") {
		contextPath = "/" + contextPath
	}

	var contact *ContactConfig
	if config.Swagger.ContactName != "" || config.Swagger.ContactEmail != "" || config.Swagger.ContactURL != "" {
		contact = &ContactConfig{
			Name:  config.Swagger.ContactName,
			Email: config.Swagger.ContactEmail,
			URL:   config.Swagger.ContactURL,
		}
	}

	AddSwaggerUI(r, SwaggerUIConfig{
		UIPath:      contextPath + config.Swagger.UIPath,
		SpecPath:    contextPath + config.Swagger.SpecPath,
		SpecContent: content,
		ServerURL:   fmt.Sprintf("http://%s:%d%s", host, config.Server.Port, contextPath),
		Contact:     contact,
	})
	return nil
}
