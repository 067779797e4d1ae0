package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/dmitrijs2005/awarddeck/internal/model"
	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
}

type awardeesBody struct {
	Awardees []model.Awardee `json:"awardees"`
}

type upsertBody struct {
	Success bool           `json:"success"`
	Awardee *model.Awardee `json:"awardee"`
}

type successBody struct {
	Success bool `json:"success"`
}

type uploadBody struct {
	Success   bool   `json:"success"`
	PhotoPath string `json:"photoPath"`
	PhotoURL  string `json:"photoUrl"`
}

type categoriesBody struct {
	Categories []string `json:"categories"`
}

// fail maps a service error to the JSON envelope: validation errors are the
// client's fault, auth failures are 401, everything else is a 500 with the
// stringified error.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listAwardees(c echo.Context) error {
	deck, err := s.service.List(c.Request().Context())
	if err != nil {
		s.logger.Error(c.Request().Context(), "list failed", "error", err.Error())
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, awardeesBody{Awardees: deck})
}

func (s *Server) upsertAwardee(c echo.Context) error {
	var a model.Awardee
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
	}

	stored, err := s.service.Upsert(c.Request().Context(), a)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, upsertBody{Success: true, Awardee: stored})
}

func (s *Server) upsertBatch(c echo.Context) error {
	var body awardeesBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
	}

	if err := s.service.UpsertBatch(c.Request().Context(), body.Awardees); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}

func (s *Server) deleteAwardee(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "id must be an integer"})
	}

	if err := s.service.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}

func (s *Server) uploadPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "multipart field 'photo' is required"})
	}
	if fileHeader.Size > s.maxUploadBytes {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "file too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fail(c, err)
	}
	defer file.Close()

	// sniff the real content type from the first bytes
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return fail(c, err)
	}
	contentType := http.DetectContentType(head[:n])

	body := io.MultiReader(bytes.NewReader(head[:n]), file)

	key, url, err := s.service.UploadPhoto(c.Request().Context(), fileHeader.Filename, contentType, body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, uploadBody{Success: true, PhotoPath: key, PhotoURL: url})
}

func (s *Server) getCategories(c echo.Context) error {
	categories, err := s.service.Categories(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, categoriesBody{Categories: categories})
}

func (s *Server) saveCategories(c echo.Context) error {
	var body categoriesBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
	}
	if body.Categories == nil {
		body.Categories = []string{}
	}

	if err := s.service.SaveCategories(c.Request().Context(), body.Categories); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, body)
}
