/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package audit

import "strconv"

// FormatFixed renders v with exactly depth digits after the decimal
// point using the standard library formatter. This is the routine under
// audit: it owns no logic here and its output is taken as-is.
func FormatFixed(v float64, depth int) string {
	return strconv.FormatFloat(v, 'f', depth, 64)
}
