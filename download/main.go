package main

import (
	"database/sql"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"os"
	"path/filepath"
	"time"
)

// download fetches every playthrough uploaded by the http_enabled build of
// the game and writes each one to <user>/<start moment>.dodge-<sim>-<input>.
// A downloaded file can be replayed by passing it as the only argument to the
// game.

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "download",
})

func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs " +
		"WHERE playthrough IS NOT NULL")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		filename := dbRows[i].Filename()
		WriteFile(filename, dbRows[i].data)
		logger.Info("downloaded", "file", filename, "id", dbRows[i].id,
			"release", dbRows[i].releaseVersion, "bytes", len(dbRows[i].data))
	}
	logger.Info("done", "playthroughs", len(dbRows))
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("DODGE_DBUSER"),
		Passwd:               os.Getenv("DODGE_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("DODGE_DBADDR"),
		DBName:               os.Getenv("DODGE_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		logger.Error("download failed", "err", e)
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

// Filename puts the simulation and input versions in the extension, so it is
// obvious which release of the game can replay the file.
func (r *dbRow) Filename() string {
	m := r.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.dodge-%d-%d", r.user,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		r.simulationVersion, r.inputVersion)
}

func WriteFile(name string, data []byte) {
	Check(os.MkdirAll(filepath.Dir(name), 0755))
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
