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

package workshop

import dbmodel "github.com/domocarroll/subfracture-v3/internal/system/database/model"

var (
	// queryCreateSession is the query to create a new workshop session.
	queryCreateSession = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-01",
		Query: `INSERT INTO WORKSHOP_SESSION (SESSION_ID, BRAND_ID, FACILITATOR, WORKSHOP_TYPE, ` +
			`MAX_PARTICIPANTS, PARTICIPANTS, STATUS, CREATED_AT, UPDATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	}

	// queryGetSessionByID is the query to get a workshop session by id.
	queryGetSessionByID = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-02",
		Query: `SELECT SESSION_ID, BRAND_ID, FACILITATOR, WORKSHOP_TYPE, MAX_PARTICIPANTS, PARTICIPANTS, ` +
			`STATUS, CREATED_AT, UPDATED_AT FROM WORKSHOP_SESSION WHERE SESSION_ID = $1`,
	}

	// queryGetActiveSessions is the query to list active workshop sessions.
	queryGetActiveSessions = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-03",
		Query: `SELECT SESSION_ID, BRAND_ID, FACILITATOR, WORKSHOP_TYPE, MAX_PARTICIPANTS, PARTICIPANTS, ` +
			`STATUS, CREATED_AT, UPDATED_AT FROM WORKSHOP_SESSION WHERE STATUS = 'active' ORDER BY CREATED_AT DESC`,
	}

	// queryUpdateSession is the query to update a session's participants and status.
	queryUpdateSession = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-04",
		Query: `UPDATE WORKSHOP_SESSION SET PARTICIPANTS = $2, STATUS = $3, UPDATED_AT = $4 ` +
			`WHERE SESSION_ID = $1`,
	}

	// queryCreateEvent is the query to append a session event.
	queryCreateEvent = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-05",
		Query: `INSERT INTO WORKSHOP_EVENT (EVENT_ID, SESSION_ID, EVENT_TYPE, ACTOR, DETAILS, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// queryGetSessionEvents is the query to get the event log for a session.
	queryGetSessionEvents = dbmodel.DBQuery{
		ID: "WSQ-SESSION_MGT-06",
		Query: `SELECT EVENT_ID, SESSION_ID, EVENT_TYPE, ACTOR, DETAILS, CREATED_AT ` +
			`FROM WORKSHOP_EVENT WHERE SESSION_ID = $1 ORDER BY CREATED_AT ASC`,
	}
)
