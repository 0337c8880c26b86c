package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Bossnapi119/pakawinasiayam/pkg/resp"
	"github.com/Bossnapi119/pakawinasiayam/services"
)

type SiteController struct {
	Svc *services.SiteService
}

func NewSiteController(svc *services.SiteService) *SiteController {
	return &SiteController{Svc: svc}
}

// GET /api/public/site (no auth)
func (ctl *SiteController) GetPublic(c *gin.Context) {
	cfg, err := ctl.Svc.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// GET /api/site (admin)
func (ctl *SiteController) Get(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	cfg, err := ctl.Svc.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /api/admin/site (admin)
func (ctl *SiteController) Update(c *gin.Context) {
	var req services.SiteConfigIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Update(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /api/admin/site/logo (admin, multipart)
func (ctl *SiteController) UploadLogo(c *gin.Context) {
	ctl.upload(c, ctl.Svc.ReplaceLogo)
}

// POST /api/admin/site/poster (admin, multipart)
func (ctl *SiteController) UploadPoster(c *gin.Context) {
	ctl.upload(c, ctl.Svc.ReplacePoster)
}

func (ctl *SiteController) upload(c *gin.Context, replace func(r io.Reader, size int64, name string) (string, error)) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "no file uploaded")
		return
	}
	f, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	path, err := replace(f, file.Size, file.Filename)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"path": path})
}
