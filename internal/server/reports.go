package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetMonthlyReport(c *gin.Context) {
	totals, err := s.reportSvc.MonthlyTotals(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": totals})
}

func (s *Server) GetServiceReport(c *gin.Context) {
	rep, err := s.reportSvc.ServiceReport(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rep})
}
