package i18n

// Message catalogs, keyed by BCP 47 tag. Templates use fmt verbs with
// positional substitution; argument order is part of each key's contract and
// is noted where it is not obvious.
var catalogs = map[string]map[string]string{
	"en": {
		"but.expected": "But %s was expected",
		// %[1]s expectation description, %[2]d timeout in seconds
		"timeout": "%s\n   Timeout: test took more than %d seconds to complete",
		// %[1]s original expectation, %[2]s error type, %[3]s error message
		"unexpected.error": "%s\n   Unexpected error %s with message %s",
		"connector.or":     " or ",
		"failed":           "TEST FAILED!",
		"passed":           "TEST PASSED SUCCESSFULLY!",
		"expected":         "%s was expected",
		"expected.result":  "Expected result was: %s",
		"obtained.result":  "Obtained result was: %s",
		"no.error.basic":   "An error was expected but none occurred. %s was expected",
		// %[1]s actual error type
		"wrong.error.type.basic": "Test failed with error %s",
		// %[1]s expected error type, %[2]s actual message
		"wrong.error.message.basic": "Test failed with expected error type %s but message was %s",
		// %[1]s actual error type, %[2]s actual message
		"wrong.error.and.message.basic":        "Test failed with error %s and message %s",
		"error.description":                    "The error %s",
		"error.with.message.description":       "The error %s with message %s",
		"error.with.predicate.description":     "The error %s with message satisfying: %s",
		"error.oneof.description":              "One of the errors %s",
		"error.oneof.with.message.description": "One of the errors %s with message %s",
		"error.oneof.with.predicate.description": "One of the errors %s with message satisfying: %s",
		"error.except.description":               "Any error except %s",
		"error.except.with.message.description":  "Any error except %s, with message %s",
		"error.except.with.predicate.description": "Any error except %s, with message satisfying: %s",
		"detail.expected.exact.message":            "Expected message was %s",
		"detail.expected.predicate":                "Message should satisfy: %s",
		"detail.requirement.unspecified":           "(reason for message failure not specified)",
		"property.failure.base":                    "Does not verify expected property",
		"property.failure.suffix":                  ": %s",
		"property.must.be.true":                    "property should be true",
		"property.must.be.false":                   "property should be false",
		"property.was.true":                        "property was true",
		"property.was.false":                       "property was false",
		"suite.for":                                "Tests for %s",
		"results.passed":                           "Passed",
		"results.failed":                           "Failed",
		"results.total":                            "Total",
		"results.detail":                           "Detail",
		"results.suite":                            "Suite",
		"summary.title":                            "Overall Summary",
		"summary.suites.run":                       "Suites run: %d",
		"summary.total.tests":                      "Total tests: %d",
		"summary.success.rate":                     "Success rate: %.2f%%",
	},
	"es": {
		"but.expected":     "Pero se esperaba %s",
		"timeout":          "%s\n   Tiempo excedido: la prueba tardó más de %d segundos en completarse",
		"unexpected.error": "%s\n   Error inesperado %s con mensaje %s",
		"connector.or":     " o ",
		"failed":           "¡PRUEBA FALLIDA!",
		"passed":           "¡PRUEBA SUPERADA CON ÉXITO!",
		"expected":         "%s se esperaba",
		"expected.result":  "El resultado esperado era: %s",
		"obtained.result":  "El resultado obtenido fue: %s",
		"no.error.basic":   "Se esperaba un error pero no ocurrió ninguno. %s se esperaba",
		"wrong.error.type.basic":               "La prueba falló con el error %s",
		"wrong.error.message.basic":            "La prueba falló con el tipo de error esperado %s pero con mensaje %s",
		"wrong.error.and.message.basic":        "La prueba falló con el error %s y mensaje %s",
		"error.description":                    "El error %s",
		"error.with.message.description":       "El error %s con mensaje %s",
		"error.with.predicate.description":     "El error %s con mensaje satisfaciendo: %s",
		"error.oneof.description":              "Uno de los errores %s",
		"error.oneof.with.message.description": "Uno de los errores %s con mensaje %s",
		"error.oneof.with.predicate.description": "Uno de los errores %s con mensaje satisfaciendo: %s",
		"error.except.description":               "Cualquier error excepto %s",
		"error.except.with.message.description":  "Cualquier error excepto %s, con mensaje %s",
		"error.except.with.predicate.description": "Cualquier error excepto %s, con mensaje satisfaciendo: %s",
		"detail.expected.exact.message":            "Se esperaba el mensaje %s",
		"detail.expected.predicate":                "Se esperaba un mensaje satisfaciendo: %s",
		"detail.requirement.unspecified":           "(motivo del fallo del mensaje no especificado)",
		"property.failure.base":                    "No verifica la propiedad esperada",
		"property.failure.suffix":                  ": %s",
		"property.must.be.true":                    "la propiedad debe ser verdadera",
		"property.must.be.false":                   "la propiedad debe ser falsa",
		"property.was.true":                        "la propiedad fue verdadera",
		"property.was.false":                       "la propiedad fue falsa",
		"suite.for":                                "Pruebas para %s",
		"results.passed":                           "Superadas",
		"results.failed":                           "Fallidas",
		"results.total":                            "Total",
		"results.detail":                           "Detalle",
		"results.suite":                            "Suite",
		"summary.title":                            "Resumen General",
		"summary.suites.run":                       "Suites ejecutadas: %d",
		"summary.total.tests":                      "Total de pruebas: %d",
		"summary.success.rate":                     "Tasa de éxito: %.2f%%",
	},
	"fr": {
		"but.expected":     "Mais %s était attendu",
		"timeout":          "%s\n   Délai dépassé: le test a mis plus de %d secondes à se terminer",
		"unexpected.error": "%s\n   Erreur inattendue %s avec le message %s",
		"connector.or":     " ou ",
		"failed":           "ÉCHEC DU TEST!",
		"passed":           "TEST RÉUSSI AVEC SUCCÈS!",
		"expected":         "%s était attendu",
		"expected.result":  "Le résultat attendu était: %s",
		"obtained.result":  "Le résultat obtenu était: %s",
		"no.error.basic":   "Une erreur était attendue mais aucune ne s'est produite. %s était attendu",
		"wrong.error.type.basic":               "Le test a échoué avec l'erreur %s",
		"wrong.error.message.basic":            "Le test a échoué avec le type d'erreur attendu %s mais le message était %s",
		"wrong.error.and.message.basic":        "Le test a échoué avec l'erreur %s et le message %s",
		"error.description":                    "L'erreur %s",
		"error.with.message.description":       "L'erreur %s avec le message %s",
		"error.with.predicate.description":     "L'erreur %s avec message satisfaisant : %s",
		"error.oneof.description":              "Une des erreurs %s",
		"error.oneof.with.message.description": "Une des erreurs %s avec le message %s",
		"error.oneof.with.predicate.description": "Une des erreurs %s avec message satisfaisant : %s",
		"error.except.description":               "Toute erreur sauf %s",
		"error.except.with.message.description":  "Toute erreur sauf %s, avec le message %s",
		"error.except.with.predicate.description": "Toute erreur sauf %s, avec message satisfaisant : %s",
		"detail.expected.exact.message":            "Message attendu : %s",
		"detail.expected.predicate":                "Attendu message satisfaisant : %s",
		"detail.requirement.unspecified":           "(raison de l'échec du message non précisée)",
		"property.failure.base":                    "Ne vérifie pas la propriété attendue",
		"property.failure.suffix":                  " : %s",
		"property.must.be.true":                    "la propriété doit être vraie",
		"property.must.be.false":                   "la propriété doit être fausse",
		"property.was.true":                        "la propriété était vraie",
		"property.was.false":                       "la propriété était fausse",
		"suite.for":                                "Tests pour %s",
		"results.passed":                           "Réussis",
		"results.failed":                           "Échoués",
		"results.total":                            "Total",
		"results.detail":                           "Détail",
		"results.suite":                            "Suite",
		"summary.title":                            "Résumé Général",
		"summary.suites.run":                       "Suites exécutées: %d",
		"summary.total.tests":                      "Total des tests: %d",
		"summary.success.rate":                     "Taux de réussite: %.2f%%",
	},
}
