package dto

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// ActivityRecord is the unified feed shape every history kind maps into.
type ActivityRecord struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	AssetID    string         `json:"assetId"`
	AssetTagID string         `json:"assetTagId"`
	AssetName  string         `json:"assetName"`
	Actor      string         `json:"actor"`
	Summary    string         `json:"summary"`
	OccurredAt utils.JsonTime `json:"occurredAt"`
}

type ActivityPage struct {
	Items     []ActivityRecord `json:"items"`
	Page      int              `json:"page"`
	PageSize  int              `json:"pageSize"`
	HasMore   bool             `json:"hasMore"`
	KindTotal map[string]int64 `json:"kindTotal,omitempty"`
}
