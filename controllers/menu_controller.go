package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/pkg/resp"
	"github.com/Bossnapi119/pakawinasiayam/services"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /api/menu (public, active items only)
func (ctl *MenuController) ListActive(c *gin.Context) {
	items, err := ctl.Svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/admin/menu (admin)
func (ctl *MenuController) ListAll(c *gin.Context) {
	items, err := ctl.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// menuForm reads the multipart fields shared by create and update.
func (ctl *MenuController) menuForm(c *gin.Context) (*services.MenuItemIn, string, error) {
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil {
		return nil, "", errors.New("price must be an integer amount of cents")
	}
	active := c.PostForm("isActive")

	in := &services.MenuItemIn{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    entity.MenuCategory(c.PostForm("category")),
		IsActive:    active == "true" || active == "1",
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		imagePath, err = ctl.Svc.Uploads.SaveImage(f, file.Size, file.Filename)
		if err != nil {
			return nil, "", err
		}
	}
	return in, imagePath, nil
}

// POST /api/admin/menu (admin, multipart)
func (ctl *MenuController) Create(c *gin.Context) {
	in, imagePath, err := ctl.menuForm(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Create(in, imagePath)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp.BadRequest(c, verr.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/admin/menu/:id (admin, multipart)
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	in, imagePath, err := ctl.menuForm(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = ctl.Svc.Update(uint(id), in, imagePath)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"updated": true})
	case errors.Is(err, services.ErrMenuItemNotFound):
		resp.NotFound(c, err.Error())
	default:
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp.BadRequest(c, verr.Error())
			return
		}
		resp.ServerError(c, err)
	}
}

// DELETE /api/admin/menu/:id (admin)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	err = ctl.Svc.Delete(uint(id))
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
