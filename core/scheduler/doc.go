// Package scheduler runs fixed-interval background jobs on top of gocron.
//
// The store sweep and the periodic archive export are registered here so that
// they run independently of request traffic. gocron's internal logging is
// routed to the application's zap logger.
package scheduler
