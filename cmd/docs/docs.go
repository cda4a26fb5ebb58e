// Package docs holds the Swagger 2.0 document for the API, in the layout swag
// emits, registered with swag and served by gin-swagger. Paths mirror the
// @Router annotations on the handlers; the handlers tests compare them with the
// routes actually registered.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "get the status of server.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/bookings": {
            "get": {
                "description": "Returns every booking ordered by date, used to mark booked days on the calendar.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "List all bookings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.BookingResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list bookings",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bookings/summary": {
            "get": {
                "description": "Totals booked, paid and remaining amounts with a count per payment status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Booking receivables summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BookingSummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to summarize bookings",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bookings/{date}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get the booking for a day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar day (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid date",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Day is not booked",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Creates or fully replaces the booking on a calendar day. The payment status is derived from the amounts.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Save the booking for a day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar day (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Event details",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpsertBookingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to save booking",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Frees a calendar day. Deleting a free day succeeds.",
                "tags": [
                    "bookings"
                ],
                "summary": "Delete the booking for a day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar day (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid date",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to delete booking",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bookings/{date}/booked": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Check whether a day is booked",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar day (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BookedResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid date",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/export": {
            "get": {
                "description": "Downloads an .xlsx workbook with Bookings, Income, Expenses and Summary sheets.",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export bookings and the financial ledger",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "500": {
                        "description": "Failed to export ledger",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/finance/expense-categories": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Suggested expense categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/finance/expenses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "List expenses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ExpenseResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list expenses",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Appends an expense. Fields are checked in the order date, category, amount and the first failure is reported.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Record an expense",
                "parameters": [
                    {
                        "description": "Expense",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateExpenseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExpenseCreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to record expense",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/finance/income": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "List income",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.IncomeResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list income",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Appends an income entry. Fields are checked in the order date, description, amount and the first failure is reported.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Record income",
                "parameters": [
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateIncomeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.IncomeCreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to record income",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/finance/summary": {
            "get": {
                "description": "Total income, total expenses and net profit, recomputed from every entry.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Profit and loss summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.FinancialSummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to compute totals",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.PaymentStatus": {
            "type": "string",
            "enum": [
                "Paid",
                "Due",
                "Partial"
            ],
            "x-enum-varnames": [
                "PaymentPaid",
                "PaymentDue",
                "PaymentPartial"
            ]
        },
        "dto.BookedResponse": {
            "type": "object",
            "properties": {
                "booked": {
                    "type": "boolean"
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "dto.BookingResponse": {
            "type": "object",
            "properties": {
                "additionalDetails": {
                    "type": "string"
                },
                "amountPaid": {
                    "type": "string"
                },
                "amountPaidDisplay": {
                    "type": "string"
                },
                "clientName": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "paymentStatus": {
                    "$ref": "#/definitions/domain.PaymentStatus"
                },
                "remainingAmount": {
                    "type": "string"
                },
                "remainingAmountDisplay": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "totalAmountDisplay": {
                    "type": "string"
                }
            }
        },
        "dto.BookingSummaryResponse": {
            "type": "object",
            "properties": {
                "amountPaid": {
                    "type": "string"
                },
                "amountPaidDisplay": {
                    "type": "string"
                },
                "bookingCount": {
                    "type": "integer"
                },
                "remainingAmount": {
                    "type": "string"
                },
                "remainingAmountDisplay": {
                    "type": "string"
                },
                "statusCounts": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "totalAmount": {
                    "type": "string"
                },
                "totalAmountDisplay": {
                    "type": "string"
                }
            }
        },
        "dto.CreateExpenseRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "2000"
                },
                "category": {
                    "type": "string",
                    "example": "Rent"
                },
                "date": {
                    "type": "string",
                    "example": "2024-01-02"
                }
            }
        },
        "dto.CreateIncomeRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "5000"
                },
                "date": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "description": {
                    "type": "string",
                    "example": "Advance"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                }
            }
        },
        "dto.ExpenseCreatedResponse": {
            "type": "object",
            "properties": {
                "expense": {
                    "$ref": "#/definitions/dto.ExpenseResponse"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.ExpenseResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "amountDisplay": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "dto.FinancialSummaryResponse": {
            "type": "object",
            "properties": {
                "netProfit": {
                    "type": "string"
                },
                "netProfitDisplay": {
                    "type": "string"
                },
                "totalExpenses": {
                    "type": "string"
                },
                "totalExpensesDisplay": {
                    "type": "string"
                },
                "totalIncome": {
                    "type": "string"
                },
                "totalIncomeDisplay": {
                    "type": "string"
                }
            }
        },
        "dto.IncomeCreatedResponse": {
            "type": "object",
            "properties": {
                "income": {
                    "$ref": "#/definitions/dto.IncomeResponse"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.IncomeResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "amountDisplay": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "dto.UpsertBookingRequest": {
            "type": "object",
            "properties": {
                "additionalDetails": {
                    "type": "string",
                    "example": "Stage and lighting"
                },
                "amountPaid": {
                    "type": "string",
                    "example": "10000"
                },
                "clientName": {
                    "type": "string",
                    "example": "Asha Verma"
                },
                "totalAmount": {
                    "type": "string",
                    "example": "25000"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Venue Ledger API",
	Description:      "Booking calendar and income/expense ledger for a single venue.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
