/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"encoding/json"
	"fmt"
)

// Sizer can be implemented by cached values to report their own
// approximate serialized size, bypassing the generic estimate.
type Sizer interface {
	SizeBytes() int
}

// estimateSize computes an approximate byte footprint for a key/value pair.
// Values reporting their own size are taken at their word; everything else
// is measured by JSON length, falling back to textual length for values
// that do not serialize. The result is always an approximation.
func estimateSize(key string, value interface{}) int {
	return len(key) + valueSize(value) + entryOverheadBytes
}

func valueSize(value interface{}) int {
	if s, ok := value.(Sizer); ok {
		return s.SizeBytes()
	}
	if b, err := json.Marshal(value); err == nil {
		return len(b)
	}
	return len(fmt.Sprint(value))
}
