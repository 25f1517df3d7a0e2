// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Re-run a given action every time the given file changes.  The enclosing
// directory is watched rather than the file itself, since editors typically
// replace files on save (which drops a watch on the file proper).  This never
// returns under normal operation.
func watchAndRerun(filename string, action func()) {
	filename = filepath.Clean(filename)
	//
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer watcher.Close()
	//
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("watching %s", filename)
	//
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			//
			if filepath.Clean(event.Name) == filename && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Debugf("change detected: %s", event)
				action()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			//
			log.Errorf("watching %s: %s", filename, err)
		}
	}
}
