package api

import (
	"net/http"
	"strconv"

	resdto "barkeep/internal/handler/dto/response"
	"barkeep/internal/handler/httperr"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

func (h *CatalogHandler) ListCocktails(c *gin.Context) {
	activeOnly := false
	if v := c.Query("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			activeOnly = b
		}
	}

	cocktails, err := h.q.ListCocktails(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cocktails": resdto.FromCocktailList(cocktails)})
}

func (h *CatalogHandler) GetCocktail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cocktail id", nil)
		return
	}

	cocktail, err := h.q.GetCocktail(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCocktailView(cocktail))
}

func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.q.ListIngredients(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": resdto.FromIngredientList(ingredients)})
}

// ToggleStock flips one ingredient's stock flag and reports every cocktail
// whose availability moved as a result.
func (h *CatalogHandler) ToggleStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ingredient id", nil)
		return
	}
	if _, ok := middleware.GetHostID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.ToggleIngredientStock(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	changed := make([]resdto.CocktailAvailabilityItem, 0, len(result.Changes))
	for _, ch := range result.Changes {
		changed = append(changed, resdto.CocktailAvailabilityItem{
			CocktailID: ch.CocktailID,
			IsActive:   ch.IsActive,
		})
	}
	c.JSON(http.StatusOK, resdto.ToggleStockResponse{
		IngredientID: result.IngredientID,
		IsSoldOut:    result.IsSoldOut,
		Changed:      changed,
	})
}
