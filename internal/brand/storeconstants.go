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

package brand

import dbmodel "github.com/domocarroll/subfracture-v3/internal/system/database/model"

var (
	// queryCreateBrand is the query to create a new brand.
	queryCreateBrand = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-01",
		Query: `INSERT INTO BRAND (BRAND_ID, NAME, DESCRIPTION, DIMENSIONS, COGNITIVE_STATE, IS_ACTIVE, ` +
			`CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)`,
	}

	// queryGetBrandByID is the query to get an active brand by id.
	queryGetBrandByID = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-02",
		Query: `SELECT BRAND_ID, NAME, DESCRIPTION, DIMENSIONS, COGNITIVE_STATE, CREATED_AT, UPDATED_AT ` +
			`FROM BRAND WHERE BRAND_ID = $1 AND IS_ACTIVE = TRUE`,
	}

	// queryGetBrandListCount is the query to get the total count of active brands.
	queryGetBrandListCount = dbmodel.DBQuery{
		ID:    "BRQ-BRAND_MGT-03",
		Query: `SELECT COUNT(*) as total FROM BRAND WHERE IS_ACTIVE = TRUE`,
	}

	// queryGetBrandList is the query to get active brands with pagination.
	queryGetBrandList = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-04",
		Query: `SELECT BRAND_ID, NAME, DESCRIPTION, DIMENSIONS, COGNITIVE_STATE, CREATED_AT, UPDATED_AT ` +
			`FROM BRAND WHERE IS_ACTIVE = TRUE ORDER BY NAME LIMIT $1 OFFSET $2`,
	}

	// queryCheckBrandNameConflict is the query to check if a brand name already exists.
	queryCheckBrandNameConflict = dbmodel.DBQuery{
		ID:    "BRQ-BRAND_MGT-05",
		Query: `SELECT COUNT(*) as count FROM BRAND WHERE NAME = $1 AND IS_ACTIVE = TRUE`,
	}

	// queryUpdateBrand is the query to update a brand's dimensional state.
	queryUpdateBrand = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-06",
		Query: `UPDATE BRAND SET DIMENSIONS = $2, COGNITIVE_STATE = $3, UPDATED_AT = $4 ` +
			`WHERE BRAND_ID = $1 AND IS_ACTIVE = TRUE`,
	}

	// queryDeleteBrand is the query to soft delete a brand.
	queryDeleteBrand = dbmodel.DBQuery{
		ID:    "BRQ-BRAND_MGT-07",
		Query: `UPDATE BRAND SET IS_ACTIVE = FALSE, UPDATED_AT = $2 WHERE BRAND_ID = $1 AND IS_ACTIVE = TRUE`,
	}

	// queryCreateSnapshot is the query to create a brand snapshot.
	queryCreateSnapshot = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-08",
		Query: `INSERT INTO BRAND_SNAPSHOT (SNAPSHOT_ID, BRAND_ID, NAME, CONTEXT, STATE, CREATED_BY, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	}
)
