package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type stationRepository struct {
	db *sql.DB
}

// NewStationRepository 创建一个新的 stationRepository 实例
func NewStationRepository(db *sql.DB) *stationRepository {
	return &stationRepository{db}
}

const stationBaseFrom = ` FROM recycle_station s
	LEFT JOIN station_status st ON s.status_id = st.id `

// List 返回分页的网点列表、总数及各状态数量，统计随筛选条件变化
func (r *stationRepository) List(q model.StationQuery) ([]model.Station, int, *model.StationStats, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if q.Search != "" {
		where = append(where, "(s.name LIKE ? OR s.address_detail LIKE ? OR s.city LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like, like)
	}
	if q.Type != "" {
		where = append(where, "s.type = ?")
		args = append(args, q.Type)
	}
	if q.StatusID != "" {
		where = append(where, "s.status_id = ?")
		args = append(args, q.StatusID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	statQuery := `SELECT COUNT(*),
		IFNULL(SUM(CASE WHEN s.status_id = 1 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN s.status_id = 2 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN s.status_id = 3 THEN 1 ELSE 0 END), 0)` +
		stationBaseFrom + whereSQL

	var stats model.StationStats
	err := r.db.QueryRow(statQuery, args...).Scan(
		&stats.TotalStations, &stats.Running, &stats.Maintenance, &stats.Disabled)
	if err != nil {
		util.Logger.Error("统计网点状态失败", zap.Error(err))
		return nil, 0, nil, err
	}

	query := `SELECT s.id, s.name, s.type, s.status_id, st.name,
		s.province, s.city, s.district, s.address_detail,
		s.latitude, s.longitude, s.opening_hours, s.contact_phone, s.created_at` +
		stationBaseFrom + whereSQL + " ORDER BY s.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询网点列表失败", zap.Error(err))
		return nil, 0, nil, err
	}
	defer rows.Close()

	stations := make([]model.Station, 0, q.PerPage)
	for rows.Next() {
		var s model.Station
		err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.StatusID, &s.StatusName,
			&s.Province, &s.City, &s.District, &s.AddressDetail,
			&s.Latitude, &s.Longitude, &s.OpeningHours, &s.ContactPhone, &s.CreatedAt)
		if err != nil {
			return nil, 0, nil, err
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, nil, err
	}
	return stations, stats.TotalStations, &stats, nil
}

// FindByID 通过ID查找网点（含状态名称），不存在时返回 nil
func (r *stationRepository) FindByID(id int) (*model.Station, error) {
	query := `SELECT s.id, s.name, s.type, s.status_id, st.name,
		s.province, s.city, s.district, s.address_detail,
		s.latitude, s.longitude, s.opening_hours, s.contact_phone, s.created_at` +
		stationBaseFrom + "WHERE s.id = ?"

	var s model.Station
	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.Name, &s.Type, &s.StatusID, &s.StatusName,
		&s.Province, &s.City, &s.District, &s.AddressDetail,
		&s.Latitude, &s.Longitude, &s.OpeningHours, &s.ContactPhone, &s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create 创建网点并回填自增ID
func (r *stationRepository) Create(s *model.Station) error {
	result, err := r.db.Exec(
		`INSERT INTO recycle_station (name, type, status_id, province, city, district,
		 address_detail, latitude, longitude, opening_hours, contact_phone, remark)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Type, s.StatusID, s.Province, s.City, s.District,
		s.AddressDetail, s.Latitude, s.Longitude, s.OpeningHours, s.ContactPhone, s.Remark,
	)
	if err != nil {
		util.Logger.Error("创建网点失败", zap.String("name", s.Name), zap.Error(err))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = int(id)
	return nil
}
