package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ramo772/blog-management-api/cmd/api/dto"
	"github.com/ramo772/blog-management-api/cmd/api/middleware"
	"github.com/ramo772/blog-management-api/cmd/api/services"
)

func listInputFromQuery(c *gin.Context) services.ListBlogsInput {
	var in services.ListBlogsInput
	in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	in.SearchQuery = c.Query("searchQuery")
	return in
}

// ListBlogsHandler godoc
// @Summary      List blog posts
// @Description  List posts with optional case-insensitive search on title/content, category filter, and pagination
// @Tags         blogs
// @Param        searchQuery  query  string  false  "Substring matched against title or content"
// @Param        category     query  string  false  "Category tag (exact, case-insensitive)"
// @Param        page         query  int     false  "Page number (1-based)"
// @Param        limit        query  int     false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := listInputFromQuery(c)
		in.Category = c.Query("category")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondSuccess(c, http.StatusOK, page)
	}
}

// SearchBlogsHandler godoc
// @Summary      Search blog posts
// @Description  Case-insensitive substring search against title or content
// @Tags         blogs
// @Param        searchQuery  query  string  false  "Search query"
// @Param        page         query  int     false  "Page number (1-based)"
// @Param        limit        query  int     false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/search [get]
func SearchBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := listInputFromQuery(c)

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondSuccess(c, http.StatusOK, page)
	}
}

// BlogsByCategoryHandler godoc
// @Summary      List blog posts in a category
// @Tags         blogs
// @Param        category  path   string  true   "Category tag"
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        limit     query  int     false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/category/{category} [get]
func BlogsByCategoryHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := listInputFromQuery(c)
		in.SearchQuery = ""
		in.Category = c.Param("category")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondSuccess(c, http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get a blog post by id
// @Tags         blogs
// @Param        id  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.BlogDTO}
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A malformed id cannot match any post, so it reads as not found.
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, services.ErrBlogNotFound.Error())
			return
		}

		blog, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBlogNotFound) {
				respondError(c, http.StatusNotFound, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondSuccess(c, http.StatusOK, blog)
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog post
// @Description  Creates a post owned by the authenticated caller
// @Tags         blogs
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlogRequest  true  "Blog payload"
// @Success      201  {object}  dto.Response{data=dto.BlogDTO}
// @Failure      400  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthenticated.")
			return
		}

		var req dto.CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		blog, err := svc.Create(c.Request.Context(), callerID, services.CreateBlogInput{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			if errors.Is(err, services.ErrOwnerNotFound) {
				respondError(c, http.StatusNotFound, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondSuccess(c, http.StatusCreated, blog)
	}
}

// UpdateBlogHandler godoc
// @Summary      Update a blog post
// @Description  Applies the supplied fields; only the owner may update
// @Tags         blogs
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Blog id"
// @Param        body  body  dto.UpdateBlogRequest  true  "Fields to change"
// @Success      200  {object}  dto.Response{data=dto.BlogDTO}
// @Failure      400  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthenticated.")
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, services.ErrBlogNotFound.Error())
			return
		}

		var req dto.UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		blog, err := svc.Update(c.Request.Context(), id, callerID, services.UpdateBlogInput{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlogNotFound):
				respondError(c, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrNotOwner):
				respondError(c, http.StatusForbidden, err.Error())
			default:
				respondError(c, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}
		respondSuccess(c, http.StatusOK, blog)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog post
// @Description  Permanently removes the post; only the owner may delete
// @Tags         blogs
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.MessageDTO}
// @Failure      401  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthenticated.")
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, services.ErrBlogNotFound.Error())
			return
		}

		if err := svc.Delete(c.Request.Context(), id, callerID); err != nil {
			switch {
			case errors.Is(err, services.ErrBlogNotFound):
				respondError(c, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrNotOwner):
				respondError(c, http.StatusForbidden, err.Error())
			default:
				respondError(c, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}
		respondSuccess(c, http.StatusOK, dto.MessageDTO{Message: "blog deleted successfully."})
	}
}
