package ui

import (
	"net/http"
	"strconv"

	"aitrends/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

func (s *Server) handleSalaryStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.analyzer.SalaryStats()
		if err != nil {
			s.logger.Error("[API] failed to compute salary statistics: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to compute salary statistics",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stats": stats,
			"count": len(stats),
		})
	}
}

func (s *Server) handleTechnologyPopularity() gin.HandlerFunc {
	return func(c *gin.Context) {
		topN := parseTopN(c)

		skills, err := s.analyzer.TechnologyPopularity(topN)
		if err != nil {
			if errors.GetCode(err) == errors.CodeValidationError {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			s.logger.Error("[API] failed to compute technology popularity: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to compute technology popularity",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"skills": skills,
			"count":  len(skills),
		})
	}
}

func (s *Server) handleReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		topN := parseTopN(c)

		// GenerateReport never fails; validation problems arrive as text.
		report := s.analyzer.GenerateReport(topN)

		if c.DefaultQuery("format", "text") == "html" {
			html := markdown.ToHTML([]byte(report), nil, nil)
			c.Data(http.StatusOK, "text/html; charset=utf-8", html)
			return
		}
		c.String(http.StatusOK, report)
	}
}

// parseTopN reads the top_n query parameter. A value that is not an integer
// maps to zero so the domain validation produces the canonical message.
func parseTopN(c *gin.Context) int {
	raw := c.DefaultQuery("top_n", "10")
	topN, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return topN
}
