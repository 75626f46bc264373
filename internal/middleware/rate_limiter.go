package middleware

import (
	"net/http"
	"sync"
	"time"

	"directorio/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ── Fixed-window counter per client IP ───────────────────────────────────────

type ventanaIP struct {
	count     int
	windowEnd time.Time
}

// limitador counts requests per IP in fixed windows. Expired entries are
// purged lazily, at most once per window, so no background goroutine is
// needed.
type limitador struct {
	mu          sync.Mutex
	limite      int
	ventana     time.Duration
	entradas    map[string]*ventanaIP
	proximaPoda time.Time
	ahora       func() time.Time
}

func nuevoLimitador(limite int, ventana time.Duration) *limitador {
	return &limitador{
		limite:   limite,
		ventana:  ventana,
		entradas: make(map[string]*ventanaIP),
		ahora:    time.Now,
	}
}

// permitir registers one hit for ip. When the limit is exceeded it returns
// false and the end of the current window.
func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.ahora()
	if now.After(l.proximaPoda) {
		l.podar(now)
		l.proximaPoda = now.Add(l.ventana)
	}

	e, ok := l.entradas[ip]
	if !ok {
		e = &ventanaIP{}
		l.entradas[ip] = e
	}
	if now.After(e.windowEnd) {
		e.count = 0
		e.windowEnd = now.Add(l.ventana)
	}
	e.count++
	return e.count <= l.limite, e.windowEnd
}

func (l *limitador) podar(now time.Time) {
	purgadas := 0
	for ip, e := range l.entradas {
		if now.After(e.windowEnd) {
			delete(l.entradas, ip)
			purgadas++
		}
	}
	if purgadas > 0 {
		log.Debug().Int("purged", purgadas).Int("remaining", len(l.entradas)).Msg("rate limiter entries purged")
	}
}

// ── Middlewares ──────────────────────────────────────────────────────────────

// LoginRateLimiter limits POST /login and /register to 20 attempts per
// minute per IP. Browsers get a plain 429 page.
func LoginRateLimiter() gin.HandlerFunc {
	return limitar(nuevoLimitador(20, time.Minute), "Demasiados intentos. Intente en 1 minuto.")
}

// RateLimiter is the general limiter applied to every route.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return limitar(nuevoLimitador(limit, window), "Demasiadas solicitudes. Intente nuevamente en un momento.")
}

func limitar(l *limitador, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP())
		if ok {
			c.Next()
			return
		}
		c.Header("Retry-After", fin.UTC().Format(http.TimeFormat))
		if EsAPI(c) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.String(http.StatusTooManyRequests, msg)
		c.Abort()
	}
}
