package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrBuildInfoNotSpecified
	}

	return &appInfoService{buildInfo: buildInfo}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
