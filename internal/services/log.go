package services

import "log"

func logError(op string, err error) {
	log.Printf("ERROR [%s]: %v", op, err)
}
