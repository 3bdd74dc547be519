package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleasurecruise/cdk/internal/content"
	"github.com/Pleasurecruise/cdk/internal/importers"
)

// ContentParseRequest is the request body for a parse preview.
type ContentParseRequest struct {
	Content string `json:"content"`
}

// ContentParseResponse lists the items a paste would produce.
type ContentParseResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// ContentImportRequest is the request body for a bulk content import.
// Items is the caller's current collection; the server holds no state.
type ContentImportRequest struct {
	Content         string   `json:"content"`
	Items           []string `json:"items"`
	AllowDuplicates bool     `json:"allow_duplicates"`
}

// ContentImportResponse mirrors importers.Result.
type ContentImportResponse struct {
	Items       []string `json:"items"`
	Imported    int      `json:"imported"`
	SkippedInfo string   `json:"skipped_info,omitempty"`
}

// ContentController handles bulk distribution-content parsing and import.
type ContentController struct{}

// NewContentController creates a new ContentController.
func NewContentController() *ContentController {
	return &ContentController{}
}

// Parse handles POST /api/projects/content/parse
func (controller *ContentController) Parse(c *gin.Context) {
	var req ContentParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	items := content.Parse(req.Content)
	c.JSON(http.StatusOK, ContentParseResponse{
		Items: items,
		Count: len(items),
	})
}

// Import handles POST /api/projects/content/import
func (controller *ContentController) Import(c *gin.Context) {
	var req ContentImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := importers.Reconcile(req.Content, req.Items, req.AllowDuplicates)
	if err != nil {
		var importErr *importers.Error
		if errors.As(err, &importErr) {
			respondBadRequest(c, importErr.Message)
			return
		}
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, ContentImportResponse{
		Items:       result.Items,
		Imported:    result.Imported,
		SkippedInfo: result.SkippedInfo,
	})
}
