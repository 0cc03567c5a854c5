package mysql

import (
	"database/sql"
	"fmt"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"

	"github.com/vidshare/vidshare-be/config"
	db2 "github.com/vidshare/vidshare-be/db"
)

type MysqlDB struct {
	*ScriptDB
	*ActorDB
	*ParticipantDB
	*ActionLogDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(cfg config.Mysql) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Database))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetMaxOpenConns(20)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MysqlDB{
		ScriptDB:      getScriptDB(sess),
		ActorDB:       getActorDB(sess),
		ParticipantDB: getParticipantDB(sess),
		ActionLogDB:   getActionLogDB(sess),
		sess:          sess,
		sqlDB:         sqlDB,
	}, nil
}

func (mdb *MysqlDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MysqlDB) Close() error {
	return mdb.sess.Close()
}
