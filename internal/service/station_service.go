package service

import (
	"fmt"
	"strconv"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// StationService 处理回收网点的业务逻辑
type StationService struct {
	stationRepo interfaces.StationRepository
}

// NewStationService 创建一个新的 StationService 实例
func NewStationService(stationRepo interfaces.StationRepository) *StationService {
	return &StationService{stationRepo: stationRepo}
}

// StationInput 创建网点的参数，数字字段兼容字符串写法
type StationInput struct {
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	StatusID      interface{} `json:"status_id"`
	Province      string      `json:"province"`
	City          string      `json:"city"`
	District      string      `json:"district"`
	AddressDetail string      `json:"address_detail"`
	Latitude      interface{} `json:"latitude"`
	Longitude     interface{} `json:"longitude"`
	OpeningHours  string      `json:"opening_hours"`
	ContactPhone  string      `json:"contact_phone"`
	Remark        string      `json:"remark"`
}

func parseOptionalFloat(raw interface{}, field string) (*float64, error) {
	if raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New(errors.ErrValidation, fmt.Sprintf("%s must be a number", field))
		}
		return &f, nil
	case float64:
		return &v, nil
	default:
		return nil, errors.New(errors.ErrValidation, fmt.Sprintf("%s must be a number", field))
	}
}

func trimToPtr(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

func toStationItem(s model.Station) model.StationItem {
	fullAddress := util.JoinAddress(s.Province, s.City, s.District, s.AddressDetail)
	var fullAddressPtr *string
	if fullAddress != "" {
		fullAddressPtr = &fullAddress
	}
	return model.StationItem{
		ID:            s.ID,
		Name:          s.Name,
		Type:          s.Type,
		StatusID:      s.StatusID,
		StatusName:    s.StatusName,
		Province:      s.Province,
		City:          s.City,
		District:      s.District,
		AddressDetail: s.AddressDetail,
		FullAddress:   fullAddressPtr,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		OpeningHours:  s.OpeningHours,
		ContactPhone:  s.ContactPhone,
		CreatedAt:     util.FormatDateTime(s.CreatedAt),
	}
}

// ListStations 网点列表及状态统计
func (s *StationService) ListStations(q model.StationQuery) ([]model.StationItem, int, *model.StationStats, error) {
	stations, total, stats, err := s.stationRepo.List(q)
	if err != nil {
		return nil, 0, nil, err
	}

	items := make([]model.StationItem, 0, len(stations))
	for _, st := range stations {
		items = append(items, toStationItem(st))
	}
	return items, total, stats, nil
}

// CreateStation 创建网点，状态缺省为运营中
func (s *StationService) CreateStation(in StationInput) (*model.StationItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New(errors.ErrValidation, "name is required")
	}

	statusID, err := parseOptionalInt(in.StatusID, "status_id")
	if err != nil {
		return nil, err
	}
	if statusID == nil {
		defaultStatus := 1
		statusID = &defaultStatus
	}

	latitude, err := parseOptionalFloat(in.Latitude, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := parseOptionalFloat(in.Longitude, "longitude")
	if err != nil {
		return nil, err
	}

	station := &model.Station{
		Name:          name,
		Type:          trimToPtr(in.Type),
		StatusID:      statusID,
		Province:      trimToPtr(in.Province),
		City:          trimToPtr(in.City),
		District:      trimToPtr(in.District),
		AddressDetail: trimToPtr(in.AddressDetail),
		Latitude:      latitude,
		Longitude:     longitude,
		OpeningHours:  trimToPtr(in.OpeningHours),
		ContactPhone:  trimToPtr(in.ContactPhone),
		Remark:        trimToPtr(in.Remark),
	}
	if err := s.stationRepo.Create(station); err != nil {
		return nil, err
	}

	created, err := s.stationRepo.FindByID(station.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = station
	}
	item := toStationItem(*created)
	return &item, nil
}
