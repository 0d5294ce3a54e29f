/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/spf13/afero"
)

// LocalStore keeps files on an afero file system.
type LocalStore struct {
	fs afero.Fs
}

// NewLocalStore stores files below root on the OS file system.
func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root = "."
	}
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// NewAferoStore wraps an arbitrary afero file system, e.g. afero.NewMemMapFs().
func NewAferoStore(fs afero.Fs) *LocalStore {
	return &LocalStore{fs: fs}
}

// Fs exposes the underlying file system.
func (s *LocalStore) Fs() afero.Fs {
	return s.fs
}

func (s *LocalStore) Put(_ context.Context, name string, data []byte) error {
	name = Clean(name)
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, name, data, 0o644)
}

func (s *LocalStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, Clean(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", amlerrors.ErrFileNotFound, name)
	}
	return data, err
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := s.fs.Remove(Clean(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) Exists(_ context.Context, name string) (bool, error) {
	return afero.Exists(s.fs, Clean(name))
}
