// Package database handles the optional MySQL connection used by the sighting history.
//
// It wraps GORM to configure pool limits and connection timeouts from the
// application's configuration, and offers a small schema inspector used after
// migration to confirm the history table carries every expected column.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "server_sightings", []string{"job_id"})
package database
