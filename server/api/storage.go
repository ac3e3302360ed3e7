package api

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

// AssetFileUploadEndpoint attaches a photo or document to an asset. The
// file lands in object storage, the asset keeps the key.
func AssetFileUploadEndpoint(c echo.Context) error {
	if !service.StorageSrv.Enabled() {
		return Fail(c, 503, "object storage is not configured")
	}
	id := c.Param("id")
	kind := c.QueryParam("kind")
	if kind != "photo" && kind != "document" {
		return Fail(c, 400, "kind must be photo or document")
	}

	ctx := service.ContextWithDB(global.DBConn)
	asset, err := repository.AssetDao.FindById(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return Fail(c, 400, "file is required")
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func(src multipart.File) {
		if err := src.Close(); err != nil {
			log.Errorf("Close Error: %v", err)
		}
	}(src)
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	key := service.StorageKey(kind, file.Filename)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := service.StorageSrv.Put(c.Request().Context(), key, contentType, data); err != nil {
		log.Errorf("storage put failed: %v", err)
		return FailWithDataOperate(c, 500, "upload failed", "upload "+kind+" for asset "+asset.AssetTagID, nil)
	}

	column, oldKey := "photo_key", asset.PhotoKey
	if kind == "document" {
		column, oldKey = "document_key", asset.DocumentKey
	}
	if err := repository.AssetDao.UpdateById(ctx, id, map[string]interface{}{column: key}); err != nil {
		return err
	}
	if oldKey != "" {
		// replaced object, best effort cleanup
		if err := service.StorageSrv.Delete(c.Request().Context(), oldKey); err != nil {
			log.Errorf("storage delete failed for %s: %v", oldKey, err)
		}
	}
	return SuccessWithOperate(c, "upload "+kind+" for asset "+asset.AssetTagID, H{"key": key})
}

// AssetFileDownloadEndpoint answers with a short lived presigned url.
func AssetFileDownloadEndpoint(c echo.Context) error {
	if !service.StorageSrv.Enabled() {
		return Fail(c, 503, "object storage is not configured")
	}
	id := c.Param("id")
	kind := c.QueryParam("kind")

	ctx := service.ContextWithDB(global.DBConn)
	asset, err := repository.AssetDao.FindById(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}

	key := asset.PhotoKey
	if kind == "document" {
		key = asset.DocumentKey
	}
	if key == "" {
		return NotFound(c, "no file attached")
	}
	url, err := service.StorageSrv.PresignGet(c.Request().Context(), key)
	if err != nil {
		log.Errorf("presign failed: %v", err)
		return Fail(c, 500, "download failed")
	}
	return Success(c, H{"url": url})
}
