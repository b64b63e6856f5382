package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// List 返回分页的用户列表及总数，支持昵称/手机号/ID 模糊搜索和等级筛选
func (r *userRepository) List(q model.UserQuery) ([]model.User, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if q.Search != "" {
		where = append(where, "(u.nickname LIKE ? OR u.phone LIKE ? OR CAST(u.id AS CHAR) LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like, like)
	}
	if q.LevelID != "" {
		where = append(where, "u.level_id = ?")
		args = append(args, q.LevelID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}
	baseFrom := " FROM user u LEFT JOIN user_level l ON u.level_id = l.id "

	var total int
	err := r.db.QueryRow("SELECT COUNT(*)"+baseFrom+whereSQL, args...).Scan(&total)
	if err != nil {
		util.Logger.Error("统计用户总数失败", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT u.id, u.nickname, u.avatar_url, u.phone, u.current_points,
              u.total_carbon_kg, u.recycle_count, u.created_at, u.status, l.level_name` +
		baseFrom + whereSQL + " ORDER BY u.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询用户列表失败", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]model.User, 0, q.PerPage)
	for rows.Next() {
		var u model.User
		err := rows.Scan(&u.ID, &u.Nickname, &u.AvatarURL, &u.Phone, &u.CurrentPoints,
			&u.TotalCarbonKg, &u.RecycleCount, &u.CreatedAt, &u.Status, &u.LevelName)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// FindDetail 查询用户详情，联查等级名称与默认地址，不存在时返回 nil
func (r *userRepository) FindDetail(id int) (*model.UserDetail, error) {
	query := `
		SELECT u.id, u.nickname, u.avatar_url, u.phone, u.level_id,
		       u.total_points, u.current_points, u.total_carbon_kg, u.recycle_count,
		       u.status, u.created_at, u.updated_at, l.level_name,
		       addr.province, addr.city, addr.district, addr.address_detail
		FROM user u
		LEFT JOIN user_level l ON u.level_id = l.id
		LEFT JOIN user_address addr ON addr.user_id = u.id AND addr.is_default = 1
		WHERE u.id = ?`

	var d model.UserDetail
	var province, city, district, detail *string
	err := r.db.QueryRow(query, id).Scan(
		&d.ID, &d.Nickname, &d.AvatarURL, &d.Phone, &d.LevelID,
		&d.TotalPoints, &d.CurrentPoints, &d.TotalCarbonKg, &d.RecycleCount,
		&d.Status, &d.CreatedAt, &d.UpdatedAt, &d.LevelName,
		&province, &city, &district, &detail,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查询用户详情失败", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}

	if detail != nil && *detail != "" {
		d.DefaultAddr = &model.DefaultAddress{
			Province:      province,
			City:          city,
			District:      district,
			AddressDetail: detail,
		}
	}
	return &d, nil
}

// FindProfile 查询用户基础信息（含等级名称），小程序端个人页使用
func (r *userRepository) FindProfile(id int) (*model.User, error) {
	query := `
		SELECT u.id, u.nickname, u.avatar_url, u.phone, u.level_id,
		       u.total_points, u.current_points, u.total_carbon_kg, u.recycle_count,
		       u.status, u.created_at, u.updated_at, l.level_name
		FROM user u
		LEFT JOIN user_level l ON u.level_id = l.id
		WHERE u.id = ?`

	var u model.User
	err := r.db.QueryRow(query, id).Scan(
		&u.ID, &u.Nickname, &u.AvatarURL, &u.Phone, &u.LevelID,
		&u.TotalPoints, &u.CurrentPoints, &u.TotalCarbonKg, &u.RecycleCount,
		&u.Status, &u.CreatedAt, &u.UpdatedAt, &u.LevelName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindByPhone 通过手机号查找用户，登录时使用
func (r *userRepository) FindByPhone(phone string) (*model.User, error) {
	query := `
		SELECT u.id, u.nickname, u.avatar_url, u.phone, u.level_id,
		       u.total_points, u.current_points, u.total_carbon_kg, u.recycle_count,
		       u.status, u.created_at, u.updated_at, l.level_name
		FROM user u
		LEFT JOIN user_level l ON u.level_id = l.id
		WHERE u.phone = ?`

	var u model.User
	err := r.db.QueryRow(query, phone).Scan(
		&u.ID, &u.Nickname, &u.AvatarURL, &u.Phone, &u.LevelID,
		&u.TotalPoints, &u.CurrentPoints, &u.TotalCarbonKg, &u.RecycleCount,
		&u.Status, &u.CreatedAt, &u.UpdatedAt, &u.LevelName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetStatus 返回用户当前状态，不存在时返回 nil
func (r *userRepository) GetStatus(id int) (*int, error) {
	var status int
	err := r.db.QueryRow("SELECT status FROM user WHERE id = ?", id).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

// UpdateStatus 更新用户状态
func (r *userRepository) UpdateStatus(id, status int) error {
	_, err := r.db.Exec("UPDATE user SET status = ? WHERE id = ?", status, id)
	if err != nil {
		util.Logger.Error("更新用户状态失败", zap.Int("user_id", id), zap.Error(err))
	}
	return err
}

// Ranking 按总积分或总减碳量倒序返回前 limit 名用户
func (r *userRepository) Ranking(byCarbon bool, limit int) ([]model.RankingEntry, error) {
	scoreField := "total_points"
	if byCarbon {
		scoreField = "total_carbon_kg"
	}

	query := "SELECT id, nickname, avatar_url, " + scoreField + " AS score, recycle_count " +
		"FROM user ORDER BY " + scoreField + " DESC LIMIT ?"
	rows, err := r.db.Query(query, limit)
	if err != nil {
		util.Logger.Error("查询排行榜失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.RankingEntry, 0, limit)
	for rows.Next() {
		var e model.RankingEntry
		var score *float64
		err := rows.Scan(&e.UserID, &e.Nickname, &e.AvatarURL, &score, &e.RecycleCount)
		if err != nil {
			return nil, err
		}
		if score != nil {
			e.Score = *score
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListLevels 返回全部用户等级及各等级人数，按积分门槛升序
func (r *userRepository) ListLevels() ([]model.UserLevel, error) {
	query := `
		SELECT l.id, l.level_name, l.min_points, l.max_points, l.badge_icon, l.description,
		       COUNT(u.id) AS user_count
		FROM user_level l
		LEFT JOIN user u ON u.level_id = l.id
		GROUP BY l.id, l.level_name, l.min_points, l.max_points, l.badge_icon, l.description
		ORDER BY l.min_points ASC, l.id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		util.Logger.Error("查询用户等级列表失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	levels := make([]model.UserLevel, 0, 8)
	for rows.Next() {
		var l model.UserLevel
		err := rows.Scan(&l.ID, &l.Name, &l.MinPoints, &l.MaxPoints, &l.BadgeIcon, &l.Description, &l.UserCount)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}
