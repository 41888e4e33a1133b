// Package service implements the application's use cases on top of the store
// interfaces: employee and task management, user registration and login.
// Services own transaction boundaries; handlers never touch the database.
package service
