package service

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
)

type sysMaintainService struct {
	baseService
}

// PurgeDeletedAssets permanently removes soft deleted assets past the
// retention window. Each asset is archived to object storage before the
// rows go, one transaction per asset so a single failure never stalls
// the whole sweep.
func (s *sysMaintainService) PurgeDeletedAssets() (purged int, err error) {
	ctx := s.Context(global.DBConn)
	candidates, err := repository.AssetDao.FindPurgeCandidates(ctx, constant.PurgeRetentionDays)
	if err != nil {
		return 0, err
	}
	for _, asset := range candidates {
		err := global.DBConn.Transaction(func(tx *gorm.DB) error {
			txCtx := s.Context(tx)
			archive, err := repository.AssetDao.CollectArchive(txCtx, asset.ID)
			if err != nil {
				return err
			}
			if StorageSrv.Enabled() {
				blob, err := msgpack.Marshal(archive)
				if err != nil {
					return err
				}
				key := fmt.Sprintf("purged/%s-%s.msgpack", asset.AssetTagID, asset.ID)
				if err := StorageSrv.Put(txCtx, key, "application/msgpack", blob); err != nil {
					return err
				}
			}
			return repository.AssetDao.HardDeleteWithHistory(txCtx, asset.ID)
		})
		if err != nil {
			log.Errorf("purge of asset %s failed: %v", asset.AssetTagID, err)
			continue
		}
		purged++
	}
	if purged > 0 {
		log.Infof("purged %d soft deleted assets past %d day retention", purged, constant.PurgeRetentionDays)
	}
	return purged, nil
}

// TrimOperateLogs drops operate log rows older than the given number of
// days, keeping the table from growing without bound.
func (s *sysMaintainService) TrimOperateLogs(days int) error {
	ctx := s.Context(global.DBConn)
	return repository.OperateLogDao.DeleteOutTimeLogs(ctx, days)
}
