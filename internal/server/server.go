// Package server exposes board parsing and constraint queries over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sergiodrd/sudoku/board"
)

type Handler struct{}

func New() *Handler { return &Handler{} }

// Register mounts the API routes on a gin engine.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").
		Group("/v1")

	v1.POST("/board", h.Board)
	v1.POST("/constraints", h.Constraints)
}

// ---- Board ----

type boardRequest struct {
	Puzzle string `json:"puzzle"`
}

type positionJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type boardResponse struct {
	Puzzle    string         `json:"puzzle"`
	Clues     int            `json:"clues"`
	Empty     int            `json:"empty"`
	Valid     bool           `json:"valid"`
	Conflicts []positionJSON `json:"conflicts,omitempty"`
}

// Board parses a puzzle and reports its clue count and validity.
func (h *Handler) Board(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("decode board request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode request", "message": err.Error()})
		return
	}

	b, err := board.NewFromString(req.Puzzle)
	if err != nil {
		log.Err(err).Msg("parse puzzle")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse puzzle", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, boardResponse{
		Puzzle:    b.String(),
		Clues:     b.ClueCount(),
		Empty:     b.EmptyCount(),
		Valid:     b.IsValid(),
		Conflicts: toPositions(b.Conflicts()),
	})
}

func toPositions(ps []board.Position) []positionJSON {
	if len(ps) == 0 {
		return nil
	}
	out := make([]positionJSON, len(ps))
	for i, p := range ps {
		out[i] = positionJSON{X: p.X(), Y: p.Y()}
	}
	return out
}

// ---- Constraints ----

type constraintsRequest struct {
	Puzzle string `json:"puzzle"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type constraintsResponse struct {
	Position    positionJSON `json:"position"`
	Value       int          `json:"value"`
	Row         []int        `json:"row"`
	Column      []int        `json:"column"`
	Box         []int        `json:"box"`
	Constraints []int        `json:"constraints"`
	Candidates  []int        `json:"candidates"`
}

// Constraints reports the peers, constraint set, and candidate set of one
// cell of a puzzle.
func (h *Handler) Constraints(c *gin.Context) {
	var req constraintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("decode constraints request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode request", "message": err.Error()})
		return
	}

	b, err := board.NewFromString(req.Puzzle)
	if err != nil {
		log.Err(err).Msg("parse puzzle")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse puzzle", "message": err.Error()})
		return
	}

	p, err := board.NewPosition(req.X, req.Y)
	if err != nil {
		log.Err(err).Msg("resolve cell position")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cell position", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, constraintsResponse{
		Position:    positionJSON{X: p.X(), Y: p.Y()},
		Value:       b.Get(p),
		Row:         b.RowPeers(p),
		Column:      b.ColumnPeers(p),
		Box:         b.BoxPeers(p),
		Constraints: b.Constraints(p),
		Candidates:  b.Candidates(p),
	})
}
