package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// DepartmentTree is the nested shape the sidebar renders.
type DepartmentTree struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Desc     string            `json:"desc"`
	Children []*DepartmentTree `json:"children,omitempty"`
}

func DepartmentTreeEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	all, err := repository.DepartmentDao.FindAll(ctx)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}

	byParent := map[int64][]model.Department{}
	for _, d := range all {
		byParent[d.ParentID] = append(byParent[d.ParentID], d)
	}
	var build func(parentId int64) []*DepartmentTree
	build = func(parentId int64) []*DepartmentTree {
		var nodes []*DepartmentTree
		for _, d := range byParent[parentId] {
			nodes = append(nodes, &DepartmentTree{
				ID: d.ID, Name: d.Name, Desc: d.Desc,
				Children: build(d.ID),
			})
		}
		return nodes
	}
	return Success(c, build(-1))
}

func DepartmentCreateEndpoint(c echo.Context) error {
	var item model.Department
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	if item.ParentID == 0 {
		item.ParentID = -1
	}
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.DepartmentDao.Create(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create department "+item.Name, nil)
	}
	return SuccessWithOperate(c, "create department "+item.Name, H{"id": item.ID})
}

func DepartmentUpdateEndpoint(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Fail(c, 400, "invalid department id")
	}
	var item model.Department
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = id
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.DepartmentDao.Update(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update department "+item.Name, nil)
	}
	return SuccessWithOperate(c, "update department "+item.Name, nil)
}

// DepartmentDeleteEndpoint refuses to orphan children.
func DepartmentDeleteEndpoint(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Fail(c, 400, "invalid department id")
	}
	ctx := service.ContextWithDB(global.DBConn)
	children, err := repository.DepartmentDao.FindByParentId(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return Fail(c, 400, "department has child departments")
	}
	if err := repository.DepartmentDao.DeleteById(ctx, id); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "delete failed", "delete department "+strconv.FormatInt(id, 10), nil)
	}
	return SuccessWithOperate(c, "delete department "+strconv.FormatInt(id, 10), nil)
}

func SiteListEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	items, err := repository.SiteDao.FindAll(ctx)
	if err != nil {
		return err
	}
	return Success(c, items)
}

func SiteCreateEndpoint(c echo.Context) error {
	var item model.Site
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = utils.UUID()
	item.Created = utils.NowJsonTime()
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.SiteDao.Create(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create site "+item.Name, nil)
	}
	return SuccessWithOperate(c, "create site "+item.Name, H{"id": item.ID})
}

func SiteUpdateEndpoint(c echo.Context) error {
	var item model.Site
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.SiteDao.Update(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update site "+item.Name, nil)
	}
	return SuccessWithOperate(c, "update site "+item.Name, nil)
}

func SiteDeleteEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	locations, err := repository.LocationDao.FindBySiteId(ctx, id)
	if err != nil {
		return err
	}
	if len(locations) > 0 {
		return Fail(c, 400, "site has locations")
	}
	if err := repository.SiteDao.DeleteById(ctx, id); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "delete failed", "delete site "+id, nil)
	}
	return SuccessWithOperate(c, "delete site "+id, nil)
}

func LocationListEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	if siteId := c.QueryParam("siteId"); siteId != "" {
		items, err := repository.LocationDao.FindBySiteId(ctx, siteId)
		if err != nil {
			return err
		}
		return Success(c, items)
	}
	items, err := repository.LocationDao.FindAll(ctx)
	if err != nil {
		return err
	}
	return Success(c, items)
}

func LocationCreateEndpoint(c echo.Context) error {
	var item model.Location
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = utils.UUID()
	item.Created = utils.NowJsonTime()
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.LocationDao.Create(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create location "+item.Name, nil)
	}
	return SuccessWithOperate(c, "create location "+item.Name, H{"id": item.ID})
}

func LocationUpdateEndpoint(c echo.Context) error {
	var item model.Location
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.LocationDao.Update(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update location "+item.Name, nil)
	}
	return SuccessWithOperate(c, "update location "+item.Name, nil)
}

func LocationDeleteEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.LocationDao.DeleteById(ctx, id); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "delete failed", "delete location "+id, nil)
	}
	return SuccessWithOperate(c, "delete location "+id, nil)
}

func CategoryListEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	items, err := repository.CategoryDao.FindAll(ctx)
	if err != nil {
		return err
	}
	return Success(c, items)
}

func CategoryCreateEndpoint(c echo.Context) error {
	var item model.Category
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = utils.UUID()
	item.Created = utils.NowJsonTime()
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.CategoryDao.Create(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create category "+item.Name, nil)
	}
	return SuccessWithOperate(c, "create category "+item.Name, H{"id": item.ID})
}

func CategoryUpdateEndpoint(c echo.Context) error {
	var item model.Category
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.CategoryDao.Update(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update category "+item.Name, nil)
	}
	return SuccessWithOperate(c, "update category "+item.Name, nil)
}

func CategoryDeleteEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if _, err := repository.CategoryDao.FindById(ctx, id); err == gorm.ErrRecordNotFound {
		return NotFound(c, "category not found")
	} else if err != nil {
		return err
	}
	if err := repository.CategoryDao.DeleteById(ctx, id); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "delete failed", "delete category "+id, nil)
	}
	return SuccessWithOperate(c, "delete category "+id, nil)
}
