package main

import "embed"

//go:embed migrations/*.sql
var DBMigrations embed.FS
