// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus loads test corpora, for instance the Silesia corpus
// provided by github.com/ulikunitz/zdata.
package corpus

import "io/fs"

// File holds the name and the complete content of a corpus file.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files found in the file system.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes in files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}
