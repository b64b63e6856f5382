package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type addressRepository struct {
	db *sql.DB
}

// NewAddressRepository 创建一个新的 addressRepository 实例
func NewAddressRepository(db *sql.DB) *addressRepository {
	return &addressRepository{db}
}

const addressBaseFrom = " FROM user_address a JOIN user u ON a.user_id = u.id "

// AdminList 后台地址列表、总数及标签分布统计，统计与列表共用筛选条件
func (r *addressRepository) AdminList(q model.AddressQuery) ([]model.UserAddress, int, *model.AddressStats, error) {
	where := make([]string, 0, 4)
	args := make([]interface{}, 0, 8)

	if q.Search != "" {
		where = append(where, "(u.nickname LIKE ? OR u.phone LIKE ? OR a.name LIKE ? OR a.phone LIKE ? OR a.address_detail LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like, like, like, like)
	}
	if q.Tag != "" {
		where = append(where, "a.tag = ?")
		args = append(args, q.Tag)
	}
	if q.Province != "" {
		where = append(where, "a.province = ?")
		args = append(args, q.Province)
	}
	if q.IsDefault == "0" || q.IsDefault == "1" {
		where = append(where, "a.is_default = ?")
		args = append(args, q.IsDefault)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	statQuery := `SELECT COUNT(*),
		IFNULL(SUM(CASE WHEN a.tag = '家' THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN a.tag = '公司' THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN a.is_default = 1 THEN 1 ELSE 0 END), 0)` +
		addressBaseFrom + whereSQL

	var stats model.AddressStats
	err := r.db.QueryRow(statQuery, args...).Scan(
		&stats.TotalAddresses, &stats.Home, &stats.Company, &stats.Default)
	if err != nil {
		util.Logger.Error("统计地址标签分布失败", zap.Error(err))
		return nil, 0, nil, err
	}

	query := `SELECT a.id, a.user_id, a.name, a.phone, a.province, a.city, a.district,
		a.address_detail, a.tag, a.is_default, a.created_at,
		u.nickname, u.avatar_url` +
		addressBaseFrom + whereSQL + " ORDER BY a.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询地址列表失败", zap.Error(err))
		return nil, 0, nil, err
	}
	defer rows.Close()

	addresses := make([]model.UserAddress, 0, q.PerPage)
	for rows.Next() {
		var a model.UserAddress
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Province, &a.City, &a.District,
			&a.AddressDetail, &a.Tag, &a.IsDefault, &a.CreatedAt,
			&a.Nickname, &a.UserAvatarURL)
		if err != nil {
			return nil, 0, nil, err
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, nil, err
	}
	return addresses, stats.TotalAddresses, &stats, nil
}

// ListByUser 返回某用户的全部地址，默认地址排最前
func (r *addressRepository) ListByUser(userID int) ([]model.UserAddress, error) {
	query := `SELECT id, user_id, name, phone, province, city, district,
		address_detail, tag, is_default, created_at
		FROM user_address WHERE user_id = ? ORDER BY is_default DESC, created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		util.Logger.Error("查询用户地址失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	addresses := make([]model.UserAddress, 0, 4)
	for rows.Next() {
		var a model.UserAddress
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Province, &a.City, &a.District,
			&a.AddressDetail, &a.Tag, &a.IsDefault, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// Create 创建地址。设为默认时先在同一事务里清掉该用户其它默认标记，
// 保证每个用户最多一个默认地址。
func (r *addressRepository) Create(userID int, in *model.AddressInput) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if in.IsDefault == 1 {
		if _, err := tx.Exec("UPDATE user_address SET is_default = 0 WHERE user_id = ?", userID); err != nil {
			util.Logger.Error("清除默认地址失败", zap.Int("user_id", userID), zap.Error(err))
			return 0, err
		}
	}

	result, err := tx.Exec(
		`INSERT INTO user_address (user_id, name, phone, province, city, district, address_detail, tag, is_default)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, in.Name, in.Phone, in.Province, in.City, in.District, in.AddressDetail, in.Tag, in.IsDefault,
	)
	if err != nil {
		util.Logger.Error("创建地址失败", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(id), nil
}

// Update 更新地址，默认标记的维护与 Create 相同，更新范围限定在本人名下
func (r *addressRepository) Update(id, userID int, in *model.AddressInput) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if in.IsDefault == 1 {
		if _, err := tx.Exec("UPDATE user_address SET is_default = 0 WHERE user_id = ?", userID); err != nil {
			util.Logger.Error("清除默认地址失败", zap.Int("user_id", userID), zap.Error(err))
			return err
		}
	}

	_, err = tx.Exec(
		`UPDATE user_address SET name = ?, phone = ?, province = ?, city = ?, district = ?,
		 address_detail = ?, tag = ?, is_default = ? WHERE id = ? AND user_id = ?`,
		in.Name, in.Phone, in.Province, in.City, in.District,
		in.AddressDetail, in.Tag, in.IsDefault, id, userID,
	)
	if err != nil {
		util.Logger.Error("更新地址失败", zap.Int("address_id", id), zap.Error(err))
		return err
	}
	return tx.Commit()
}

// Delete 删除地址，范围限定在本人名下
func (r *addressRepository) Delete(id, userID int) error {
	_, err := r.db.Exec("DELETE FROM user_address WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		util.Logger.Error("删除地址失败", zap.Int("address_id", id), zap.Error(err))
	}
	return err
}
