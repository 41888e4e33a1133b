// Package domain contains the core business entities of the employee task manager:
// employees, the tasks assigned to them, and the users who operate the API.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
