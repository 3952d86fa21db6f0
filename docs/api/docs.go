// Package api holds the swagger document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs/api
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/localnerve/swipefile",
            "email": "info@localnerve.com"
        },
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ads": {
            "get": {
                "tags": [
                    "Ads"
                ],
                "summary": "List competitor ads",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Headline, description or advertiser text"
                    },
                    {
                        "in": "query",
                        "name": "priority",
                        "required": false,
                        "type": "integer",
                        "description": "Priority 1-3"
                    },
                    {
                        "in": "query",
                        "name": "formatId",
                        "required": false,
                        "type": "integer",
                        "description": "Format"
                    },
                    {
                        "in": "query",
                        "name": "hookId",
                        "required": false,
                        "type": "integer",
                        "description": "Hook"
                    },
                    {
                        "in": "query",
                        "name": "themeId",
                        "required": false,
                        "type": "integer",
                        "description": "Theme"
                    },
                    {
                        "in": "query",
                        "name": "desireId",
                        "required": false,
                        "type": "integer",
                        "description": "Desire"
                    },
                    {
                        "in": "query",
                        "name": "awarenessLevelId",
                        "required": false,
                        "type": "integer",
                        "description": "Awareness level"
                    },
                    {
                        "in": "query",
                        "name": "demographicId",
                        "required": false,
                        "type": "integer",
                        "description": "Demographic"
                    },
                    {
                        "in": "query",
                        "name": "importBatchId",
                        "required": false,
                        "type": "integer",
                        "description": "Import run"
                    },
                    {
                        "in": "query",
                        "name": "sort",
                        "required": false,
                        "type": "string",
                        "description": "lastSeen|firstSeen|publishDate|priority"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer",
                        "description": "Page"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer",
                        "description": "Page size"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Ads"
                ],
                "summary": "Enter an ad manually",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Ad",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/ads/import": {
            "post": {
                "tags": [
                    "Ads"
                ],
                "summary": "Import a saved ad library export",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "formData",
                        "name": "file",
                        "required": true,
                        "type": "file",
                        "description": "HTML export"
                    },
                    {
                        "in": "formData",
                        "name": "batchName",
                        "required": true,
                        "type": "string",
                        "description": "Import run name"
                    },
                    {
                        "in": "formData",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Assign the ads to a brand"
                    }
                ]
            }
        },
        "/ads/{id}": {
            "get": {
                "tags": [
                    "Ads"
                ],
                "summary": "Get an ad with its taxonomy",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Ad ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Ads"
                ],
                "summary": "Update an ad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Ad ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Ad",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Ads"
                ],
                "summary": "Delete an ad and its snapshots",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Ad ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/ads/{id}/analyze": {
            "post": {
                "tags": [
                    "Ads",
                    "AI"
                ],
                "summary": "Transcribe the ad video and derive its main messaging",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Ad ID"
                    }
                ]
            }
        },
        "/ads/{id}/snapshots": {
            "get": {
                "tags": [
                    "Ads"
                ],
                "summary": "Engagement time series of an ad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Ad ID"
                    }
                ]
            }
        },
        "/angles": {
            "get": {
                "tags": [
                    "Angles"
                ],
                "summary": "List angles",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand; brandless angles are included"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Name contains"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Angles"
                ],
                "summary": "Create an angle",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Angle",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/angles/{id}": {
            "get": {
                "tags": [
                    "Angles"
                ],
                "summary": "Get an angle",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Angle ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Angles"
                ],
                "summary": "Update an angle",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Angle ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Angle",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Angles"
                ],
                "summary": "Delete an angle no batch uses",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Angle ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/angles/{id}/concept-doc": {
            "post": {
                "tags": [
                    "Angles",
                    "AI"
                ],
                "summary": "Write the concept document of an angle",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Angle ID"
                    }
                ]
            }
        },
        "/batch-items/{id}": {
            "put": {
                "tags": [
                    "Batch Items"
                ],
                "summary": "Update a batch item",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Item ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Batch Items"
                ],
                "summary": "Delete a batch item, freeing its letter",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Item ID"
                    }
                ]
            }
        },
        "/batch-items/{id}/status": {
            "put": {
                "tags": [
                    "Batch Items"
                ],
                "summary": "Mark a batch item PENDING or DONE",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Item ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Status",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/batches": {
            "get": {
                "tags": [
                    "Batches"
                ],
                "summary": "List batches",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    },
                    {
                        "in": "query",
                        "name": "status",
                        "required": false,
                        "type": "string",
                        "description": "Comma-separated statuses"
                    },
                    {
                        "in": "query",
                        "name": "batchType",
                        "required": false,
                        "type": "string",
                        "description": "COPYCAT|NET_NEW|ITERATION"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Name contains"
                    },
                    {
                        "in": "query",
                        "name": "includeTrashed",
                        "required": false,
                        "type": "boolean",
                        "description": "Include trashed batches"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer",
                        "description": "Page"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer",
                        "description": "Page size"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Batches"
                ],
                "summary": "Create a batch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Batch",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/batches/board": {
            "get": {
                "tags": [
                    "Batches"
                ],
                "summary": "Batches grouped by status in pipeline order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    }
                ]
            }
        },
        "/batches/{id}": {
            "get": {
                "tags": [
                    "Batches"
                ],
                "summary": "Get a batch with items and progress",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Batches"
                ],
                "summary": "Update a batch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Batch",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Batches"
                ],
                "summary": "Hard delete a batch and its items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/batches/{id}/brief": {
            "post": {
                "tags": [
                    "Batches",
                    "AI"
                ],
                "summary": "Write the brief and creator brief of a batch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ]
            }
        },
        "/batches/{id}/creators": {
            "put": {
                "tags": [
                    "Batches"
                ],
                "summary": "Replace the creators assigned to a batch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Creator ids",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/batches/{id}/items": {
            "post": {
                "tags": [
                    "Batch Items"
                ],
                "summary": "Add a variation under the next free letter",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "description": "Item",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/batches/{id}/performance": {
            "get": {
                "tags": [
                    "Batches",
                    "Facebook"
                ],
                "summary": "Rollup of the Facebook ads linked to a batch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ]
            }
        },
        "/batches/{id}/restore": {
            "post": {
                "tags": [
                    "Batches"
                ],
                "summary": "Restore a trashed batch to IDEATION",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ]
            }
        },
        "/batches/{id}/status": {
            "put": {
                "tags": [
                    "Batches"
                ],
                "summary": "Move a batch to any status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Status",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/batches/{id}/trash": {
            "post": {
                "tags": [
                    "Batches"
                ],
                "summary": "Move a batch to the trash",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    }
                ]
            }
        },
        "/batches/{id}/variations": {
            "post": {
                "tags": [
                    "Batches",
                    "AI"
                ],
                "summary": "Propose variations, optionally adding them as items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Batch ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "description": "count defaults to 3",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/brands": {
            "get": {
                "tags": [
                    "Brands"
                ],
                "summary": "List brands",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "post": {
                "tags": [
                    "Brands"
                ],
                "summary": "Create a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Brand",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/brands/{id}": {
            "get": {
                "tags": [
                    "Brands"
                ],
                "summary": "Get a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Brands"
                ],
                "summary": "Update a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Brand",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Brands"
                ],
                "summary": "Delete a brand and everything it owns",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/brands/{id}/dashboard": {
            "get": {
                "tags": [
                    "Brands"
                ],
                "summary": "Pipeline counts and ad performance of a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    }
                ]
            }
        },
        "/brands/{id}/drive/files": {
            "get": {
                "tags": [
                    "Brands"
                ],
                "summary": "List a folder of the brand's Drive",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    },
                    {
                        "in": "query",
                        "name": "folderId",
                        "required": false,
                        "type": "string",
                        "description": "Folder, defaults to the brand root"
                    }
                ]
            }
        },
        "/brands/{id}/facebook/sync": {
            "post": {
                "tags": [
                    "Facebook"
                ],
                "summary": "Pull ad-level insights for the brand's ad account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    }
                ]
            }
        },
        "/brands/{id}/integrations/facebook": {
            "put": {
                "tags": [
                    "Brands"
                ],
                "summary": "Store the Facebook ad account credentials of a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Credentials",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/brands/{id}/integrations/google/auth-url": {
            "get": {
                "tags": [
                    "Brands"
                ],
                "summary": "Google consent URL for a brand",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    }
                ]
            }
        },
        "/brands/{id}/integrations/google/exchange": {
            "post": {
                "tags": [
                    "Brands"
                ],
                "summary": "Complete the Google consent flow",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Authorization code",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/brands/{id}/scans": {
            "post": {
                "tags": [
                    "Scans"
                ],
                "summary": "Start a background scan of the brand's Drive",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "202": {
                        "description": "Accepted"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Brand ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "description": "Folder, defaults to the brand root",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/creatives": {
            "get": {
                "tags": [
                    "Creatives"
                ],
                "summary": "List creatives, flat or grouped into a deck",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    },
                    {
                        "in": "query",
                        "name": "creatorId",
                        "required": false,
                        "type": "integer",
                        "description": "Creator"
                    },
                    {
                        "in": "query",
                        "name": "type",
                        "required": false,
                        "type": "string",
                        "description": "VIDEO|IMAGE"
                    },
                    {
                        "in": "query",
                        "name": "tags",
                        "required": false,
                        "type": "string",
                        "description": "Comma-separated tags; all must match"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Name or folder contains"
                    },
                    {
                        "in": "query",
                        "name": "view",
                        "required": false,
                        "type": "string",
                        "description": "flat|deck"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer",
                        "description": "Page (flat view)"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer",
                        "description": "Page size (flat view)"
                    }
                ]
            }
        },
        "/creatives/{id}": {
            "get": {
                "tags": [
                    "Creatives"
                ],
                "summary": "Get a creative with its tags",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creative ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Creatives"
                ],
                "summary": "Update a creative; tags, when given, replace the tag set",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creative ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Creative",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Creatives"
                ],
                "summary": "Delete a creative record; the Drive file is kept",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creative ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/creatives/{id}/stream": {
            "get": {
                "tags": [
                    "Creatives"
                ],
                "summary": "Byte-range proxy of the creative media from Drive",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "206": {
                        "description": "Partial Content"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creative ID"
                    },
                    {
                        "in": "header",
                        "name": "Range",
                        "required": false,
                        "type": "string",
                        "description": "Byte range"
                    }
                ]
            }
        },
        "/creators": {
            "get": {
                "tags": [
                    "Creators"
                ],
                "summary": "List creators",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Name or email contains"
                    },
                    {
                        "in": "query",
                        "name": "status",
                        "required": false,
                        "type": "string",
                        "description": "PROSPECT|ONBOARDING|ACTIVE|INACTIVE"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer",
                        "description": "Page"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer",
                        "description": "Page size"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Creators"
                ],
                "summary": "Create a creator",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Creator",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/creators/{id}": {
            "get": {
                "tags": [
                    "Creators"
                ],
                "summary": "Get a creator",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creator ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Creators"
                ],
                "summary": "Update a creator",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creator ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Creator",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Creators"
                ],
                "summary": "Delete a creator; their creatives stay",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creator ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        },
        "/creators/{id}/deliveries": {
            "post": {
                "tags": [
                    "Creators"
                ],
                "summary": "Start a delivery with a fresh C-###### id",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creator ID"
                    }
                ]
            }
        },
        "/creators/{id}/uploads": {
            "post": {
                "tags": [
                    "Creators"
                ],
                "summary": "Upload a delivered file to the creator's Drive folder",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Creator ID"
                    },
                    {
                        "in": "formData",
                        "name": "file",
                        "required": true,
                        "type": "file",
                        "description": "Video or image"
                    }
                ]
            }
        },
        "/facebook-ads": {
            "get": {
                "tags": [
                    "Facebook"
                ],
                "summary": "List synced Facebook ads by spend",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    },
                    {
                        "in": "query",
                        "name": "batchId",
                        "required": false,
                        "type": "integer",
                        "description": "Linked batch"
                    },
                    {
                        "in": "query",
                        "name": "unlinked",
                        "required": false,
                        "type": "boolean",
                        "description": "Only ads without a batch"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer",
                        "description": "Page"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer",
                        "description": "Page size"
                    }
                ]
            }
        },
        "/facebook-ads/{id}/batch": {
            "put": {
                "tags": [
                    "Facebook"
                ],
                "summary": "Link a Facebook ad to a batch, or unlink with null",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Facebook ad ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Batch",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Service health",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable"
                    }
                }
            }
        },
        "/import-batches": {
            "get": {
                "tags": [
                    "Ads"
                ],
                "summary": "Import runs with their snapshot counts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/scan-jobs": {
            "get": {
                "tags": [
                    "Scans"
                ],
                "summary": "Recent scan jobs, newest first",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "brandId",
                        "required": false,
                        "type": "integer",
                        "description": "Brand"
                    }
                ]
            }
        },
        "/scan-jobs/{id}": {
            "get": {
                "tags": [
                    "Scans"
                ],
                "summary": "Get a scan job",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Job ID"
                    }
                ]
            }
        },
        "/tags": {
            "get": {
                "tags": [
                    "Tags"
                ],
                "summary": "List tags",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "kind",
                        "required": false,
                        "type": "string",
                        "description": "PLAIN|GROUP_ID|LEVEL1|BUNCH|AI_GENERATED"
                    }
                ]
            }
        },
        "/tags/apply": {
            "post": {
                "tags": [
                    "Tags"
                ],
                "summary": "Create missing tags and connect them to creatives",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Tags and creatives",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/tags/remove": {
            "post": {
                "tags": [
                    "Tags"
                ],
                "summary": "Disconnect tags from creatives",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Tags and creatives",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/{kind}": {
            "get": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "List a taxonomy",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "required": true,
                        "type": "string",
                        "description": "formats|hooks|themes|desires|awareness-levels|demographics"
                    },
                    {
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string",
                        "description": "Name contains"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Find or create a taxonomy row by name",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "required": true,
                        "type": "string",
                        "description": "Taxonomy"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Row",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/{kind}/{id}": {
            "get": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Get a taxonomy row",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "required": true,
                        "type": "string",
                        "description": "Taxonomy"
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Row ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Rename or describe a taxonomy row",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "required": true,
                        "type": "string",
                        "description": "Taxonomy"
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Row ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Row",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Delete a taxonomy row",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "required": true,
                        "type": "string",
                        "description": "Taxonomy"
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "Row ID"
                    }
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "cookie_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Swipefile API",
	Description:      "Competitor ad swipe file, creative production pipeline and ad attribution",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
