package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"cafe/internal/api/util"
	"cafe/internal/core/service"
)

const (
	maxUploadMemory = 10 << 20
	imageFileField  = "imageFile"
)

var errInvalidPrice = errors.New("invalid price")

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.List(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error fetching menu", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, upload, err := readMenuRequest(r)
	if err != nil {
		writeMenuInputError(w, err)
		return
	}

	item, err := h.menuService.Create(r.Context(), in, upload)
	if errors.Is(err, service.ErrValidation) {
		util.WriteMessage(w, http.StatusBadRequest, "Name, price and category are required")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error adding item", err, false)
		return
	}
	util.WriteJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, upload, err := readMenuRequest(r)
	if err != nil {
		writeMenuInputError(w, err)
		return
	}

	item, err := h.menuService.Update(r.Context(), mux.Vars(r)["id"], in, upload)
	if errors.Is(err, service.ErrNotFound) {
		util.WriteMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error updating item", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.menuService.Delete(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		util.WriteMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error deleting item", err, false)
		return
	}
	util.WriteMessage(w, http.StatusOK, "Item deleted successfully")
}

func writeMenuInputError(w http.ResponseWriter, err error) {
	if errors.Is(err, errInvalidPrice) {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid price")
		return
	}
	util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
}

// readMenuRequest accepts multipart/form-data (with an optional imageFile),
// urlencoded forms and JSON bodies.
func readMenuRequest(r *http.Request) (service.MenuInput, *service.Upload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return service.MenuInput{}, nil, err
		}
		in, err := menuInputFromForm(r.MultipartForm.Value)
		if err != nil {
			return in, nil, err
		}
		file, header, err := r.FormFile(imageFileField)
		if err == http.ErrMissingFile {
			return in, nil, nil
		}
		if err != nil {
			return in, nil, err
		}
		// the multipart temp file is closed by net/http after the handler returns
		return in, &service.Upload{Filename: header.Filename, Content: file}, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return service.MenuInput{}, nil, err
		}
		in, err := menuInputFromForm(r.PostForm)
		return in, nil, err
	default:
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return service.MenuInput{}, nil, err
		}
		in, err := menuInputFromJSON(body)
		return in, nil, err
	}
}

func menuInputFromForm(values map[string][]string) (service.MenuInput, error) {
	field := func(key string) (string, bool) {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return "", false
		}
		return v[0], true
	}

	var in service.MenuInput
	if v, ok := field("name"); ok {
		in.Name = &v
	}
	if v, ok := field("category"); ok {
		in.Category = &v
	}
	if v, ok := field("description"); ok {
		in.Description = &v
	}
	if v, ok := field("imageUrl"); ok {
		in.ImageURL = v
	}
	if v, ok := field("price"); ok && v != "" {
		price, err := cast.ToFloat64E(v)
		if err != nil {
			return in, errInvalidPrice
		}
		in.Price = &price
	}
	return in, nil
}

func menuInputFromJSON(body map[string]interface{}) (service.MenuInput, error) {
	str := func(key string) *string {
		v, ok := body[key]
		if !ok || v == nil {
			return nil
		}
		s := cast.ToString(v)
		return &s
	}

	in := service.MenuInput{
		Name:        str("name"),
		Category:    str("category"),
		Description: str("description"),
	}
	if v := str("imageUrl"); v != nil {
		in.ImageURL = *v
	}
	if v, ok := body["price"]; ok && v != nil && v != "" {
		price, err := cast.ToFloat64E(v)
		if err != nil {
			return in, errInvalidPrice
		}
		in.Price = &price
	}
	return in, nil
}
