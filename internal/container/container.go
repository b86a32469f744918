// nefdecode decodes Nikon Electronic Format (NEF) raw camera files into a
// linear, demosaic-ready pixel raster plus structured metadata.
// Copyright (C) 2026  R. Voss
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package container provides dependency injection for nefdecode's CLI.
//
// It wires together the services and infrastructure components the CLI
// needs, making them available through a single Container struct.
package container

import (
	"log/slog"

	"github.com/go-nef/nefdecode/internal/service/decode"
	"github.com/go-nef/nefdecode/internal/service/osfs"
	"github.com/go-nef/nefdecode/internal/service/preview"
)

// Container holds all application dependencies and services.
type Container struct {
	Logger         *slog.Logger
	FileSystem     osfs.FileSystem
	DecodeService  decode.Service
	PreviewService preview.Service
}

// New creates and initializes a Container with all required services and
// dependencies.
func New(logger *slog.Logger) *Container {
	fs := osfs.NewFileSystem()

	return &Container{
		Logger:         logger,
		FileSystem:     fs,
		DecodeService:  decode.NewService(logger, fs),
		PreviewService: preview.NewService(logger),
	}
}
