// Package apperrors porte la taxonomie d'erreurs du cœur métier.
// Les handlers traduisent ces types en codes HTTP + {success:false, message}.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError : entrée invalide ou manquante, corrigeable par l'appelant.
// Field désigne le premier champ en défaut (validation court-circuitée).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// NotFoundError : id de produit ou de commande inconnu.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s introuvable: %s", e.Resource, e.ID)
}

// ConflictError : tentative de mutation d'une ressource immuable
// (produit statique).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// GatewayError : l'appel au prestataire de paiement a échoué ou a renvoyé
// une forme inattendue. La commande reste dans son état courant.
type GatewayError struct {
	Gateway string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("passerelle %s: %v", e.Gateway, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NetworkError : échec de transport, distinct d'un success:false applicatif.
// Le panier s'en sert pour basculer en mode dégradé local.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("réseau (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrEmptyCart : assemblage demandé sur un instantané sans entrée positive.
var ErrEmptyCart = errors.New("panier vide")

// ErrForbidden : la commande n'appartient pas à l'appelant.
var ErrForbidden = errors.New("commande non autorisée pour cet utilisateur")

// IsNetwork indique si err est (ou enveloppe) une erreur de transport.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
