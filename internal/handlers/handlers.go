// Package handlers binds the REST surface to storage. Validation failures
// and missing records answer with a {"detail": ...} body; failed mutations
// leave stored state untouched.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	cacheClientesKey = "ouroverde:clientes"
	cacheProdutosKey = "ouroverde:produtos"

	cacheTTLShort  = 5 * time.Minute
	cacheTTLMedium = 30 * time.Minute
)

func detail(message string) gin.H {
	return gin.H{"detail": message}
}

// parseDateRange reads the optional dataInicio/dataFim ISO timestamps used
// by the order history and every analytics endpoint.
func parseDateRange(c *gin.Context) (inicio, fim *time.Time, err error) {
	if raw := c.Query("dataInicio"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		inicio = &t
	}
	if raw := c.Query("dataFim"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		fim = &t
	}
	return inicio, fim, nil
}
