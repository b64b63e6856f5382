// relevel 按积分阈值重算所有用户的等级。
// 等级配置调整后手动执行一次即可。
package main

import (
	"database/sql"
	"fmt"
	"time"

	"recycle-backend/config"
	"recycle-backend/internal/util"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	config.Init()
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	db.SetConnMaxLifetime(time.Minute)
	if err := db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}

	// total_points 落在 [min_points, max_points] 区间即归属该等级，
	// max_points 为 NULL 表示无上限
	result, err := db.Exec(`
		UPDATE user u
		JOIN user_level l
		  ON IFNULL(u.total_points, 0) >= l.min_points
		 AND (l.max_points IS NULL OR IFNULL(u.total_points, 0) <= l.max_points)
		SET u.level_id = l.id`)
	if err != nil {
		util.Logger.Fatal("重算用户等级失败", zap.Error(err))
	}

	affected, _ := result.RowsAffected()
	util.Logger.Info("用户等级重算完成", zap.Int64("affected", affected))
}
