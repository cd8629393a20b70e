package collection

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"github.com/datafield/asset-library-backend/internal/entity"
	"github.com/datafield/asset-library-backend/internal/model/request"
	"github.com/datafield/asset-library-backend/internal/model/response/wrapper"
	"github.com/datafield/asset-library-backend/internal/service/collection"
)

type CollectionHandler struct {
	srv collection.CollectionService
}

func NewCollectionHandler(srv collection.CollectionService) *CollectionHandler {
	return &CollectionHandler{srv: srv}
}

// CreateCollection godoc
// @Summary Create new collection
// @Description Create a new library collection owned by the authenticated user
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Param collection body request.CreateCollection true "Collection object"
// @Success 201 {object} wrapper.ResponseWrapper{data=response.Collection}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /collections [post]
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	var createRequest request.CreateCollection
	if err := c.ShouldBindJSON(&createRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	created, err := h.srv.Create(c.Request.Context(), &createRequest, userUUID)
	if err != nil {
		if strings.HasPrefix(err.Error(), "collection is not ready to be public") ||
			strings.HasPrefix(err.Error(), "unsupported asset type") ||
			strings.HasPrefix(err.Error(), "invalid settings") {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: created, Success: true})
}

// GetCollection godoc
// @Summary Get collection by uid
// @Description Get collection details by uid (owner or public)
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Param uid path string true "Collection uid"
// @Success 200 {object} wrapper.ResponseWrapper{data=response.Collection}
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 403 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /collections/{uid} [get]
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	found, err := h.srv.GetByUID(c.Request.Context(), c.Param("uid"), userUUID)
	if err != nil {
		if err.Error() == "collection not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Collection not found", Success: false})
			return
		}
		if err.Error() == "access denied" {
			c.JSON(http.StatusForbidden, wrapper.ErrorWrapper{Message: "Access denied", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: found, Success: true})
}

// GetCollections godoc
// @Summary List collections
// @Description List collections owned by the authenticated user
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Param tag query string false "Filter by tag"
// @Param public query bool false "Filter by public flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} wrapper.ResponseWrapper{data=response.CollectionList}
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /collections [get]
func (h *CollectionHandler) GetCollections(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	var filter entity.CollectionFilter

	if tag := c.Query("tag"); tag != "" {
		filter.Tag = &tag
	}
	if publicStr := c.Query("public"); publicStr != "" {
		public, err := strconv.ParseBool(publicStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid public filter", Success: false})
			return
		}
		filter.Public = &public
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	list, err := h.srv.List(c.Request.Context(), filter, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: list, Success: true})
}

// UpdateCollection godoc
// @Summary Update collection
// @Description Update collection details (owner only)
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Param uid path string true "Collection uid"
// @Param collection body request.UpdateCollection true "Collection update object"
// @Success 200 {object} wrapper.ResponseWrapper{data=response.Collection}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 403 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /collections/{uid} [patch]
func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	var updateRequest request.UpdateCollection
	if err := c.ShouldBindJSON(&updateRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	updated, err := h.srv.Update(c.Request.Context(), c.Param("uid"), &updateRequest, userUUID)
	if err != nil {
		if err.Error() == "collection not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Collection not found", Success: false})
			return
		}
		if err.Error() == "only the owner can update a collection" {
			c.JSON(http.StatusForbidden, wrapper.ErrorWrapper{Message: "Owner access required", Success: false})
			return
		}
		if strings.HasPrefix(err.Error(), "collection is not ready to be public") ||
			strings.HasPrefix(err.Error(), "invalid settings") {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: updated, Success: true})
}

// DeleteCollection godoc
// @Summary Delete collection
// @Description Delete collection (owner only)
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Param uid path string true "Collection uid"
// @Success 200 {object} wrapper.SuccessWrapper
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 403 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /collections/{uid} [delete]
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	err = h.srv.Delete(c.Request.Context(), c.Param("uid"), userUUID)
	if err != nil {
		if err.Error() == "collection not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Collection not found", Success: false})
			return
		}
		if err.Error() == "only the owner can delete a collection" {
			c.JSON(http.StatusForbidden, wrapper.ErrorWrapper{Message: "Owner access required", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Collection deleted successfully", Success: true})
}

// GetTags godoc
// @Summary List tags
// @Description List distinct tags across the authenticated user's collections
// @Tags /api/v1/collections
// @Accept json
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=[]response.Tag}
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /tags [get]
func (h *CollectionHandler) GetTags(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	userUUID, err := uuid.FromString(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	tags, err := h.srv.ListTags(c.Request.Context(), userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: tags, Success: true})
}
