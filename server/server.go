package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rando-scraper/filter"
	"rando-scraper/models"
	"rando-scraper/store"
)

// Handler serves the browse API over a store of scraped hikes.
type Handler struct {
	store store.Store
}

// NewHandler creates a handler backed by st.
func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/healthz", h.health)

	api := router.Group("/api")
	api.GET("/hikes", h.listHikes)
	api.GET("/dimensions", h.dimensions)
	return router
}

// Run serves the API on addr until the process receives SIGINT or SIGTERM,
// then shuts down gracefully.
func (h *Handler) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: h.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("API server listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Shutdown signal received: %s\n", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (h *Handler) health(c *gin.Context) {
	n, err := h.store.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "hikes": n})
}

func (h *Handler) listHikes(c *gin.Context) {
	sel := parseSelection(c)

	records, err := h.store.LoadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	matched := filter.Match(records, sel)
	c.JSON(http.StatusOK, gin.H{
		"count": len(matched),
		"hikes": matched,
	})
}

func (h *Handler) dimensions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"canton":        models.AllCantons,
		"parcours":      models.AllParcours,
		"km":            models.AllKmRanges,
		"duree":         models.AllDurees,
		"environnement": models.AllEnvironnements,
		"difficulte":    models.AllDifficultes,
		"denivele":      models.AllDeniveles,
		"saison":        models.AllSaisons,
	})
}

// parseSelection reads one list of wanted values per dimension from the
// query string.
func parseSelection(c *gin.Context) filter.Selection {
	return filter.Selection{
		Cantons:        asEnum[models.Canton](queryList(c, "canton")),
		Parcours:       asEnum[models.TypeParcours](queryList(c, "parcours")),
		KmRanges:       asEnum[models.KmRange](queryList(c, "km")),
		Durees:         asEnum[models.DureeRange](queryList(c, "duree")),
		Environnements: asEnum[models.Environnement](queryList(c, "environnement")),
		Difficultes:    asEnum[models.Difficulte](queryList(c, "difficulte")),
		Deniveles:      asEnum[models.DeniveleRange](queryList(c, "denivele")),
		Saisons:        asEnum[models.Saison](queryList(c, "saison")),
	}
}

// queryList reads a repeatable query parameter, also accepting
// comma-separated values: ?canton=Vaud&canton=Jura or ?canton=Vaud,Jura.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func asEnum[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
