package docgen

// Embedded fallback texts used when no active template row exists.
// cmd/migrate seeds the global template rows from these same texts.

const DefaultContractTerms = `1. SERVICES. The Company agrees to provide visa application advisory and processing support services for the product purchased by the Client, as identified by the order number printed on this contract.

2. SCOPE. The services cover the preparation, review and submission support of the Client's visa application materials. The Company does not issue visas and does not represent any government authority. Approval decisions rest exclusively with the competent consular authorities.

3. CLIENT OBLIGATIONS. The Client is responsible for the accuracy and authenticity of all information and documents provided, including identity documents and photographs uploaded through the intake process.

4. FEES AND PAYMENT. The total amount stated in this contract reflects the price effectively authorized by the Client through the selected payment method, including applicable local taxes and processing fees where charged.

5. NO GUARANTEE OF OUTCOME. The Client acknowledges that the payment covers the services described above and is not conditioned on the approval of any visa application.

6. REFUNDS. Refund requests are handled according to the refund policy in force at the date of purchase and communicated at checkout.

7. DATA PROTECTION. Identity documents and signatures collected during intake are used solely for the preparation of the Client's application and the execution of this contract.

8. ACCEPTANCE. By signing electronically, the Client confirms having read and accepted these terms in full. The signature image, signing timestamp and originating IP address recorded on this document identify the accepting party.`

const DefaultAnnexTerms = `1. PURPOSE. This Annex I documents the Client's express authorization of the payment associated with the order identified above and forms an integral part of the Visa Service Contract.

2. PAYMENT AUTHORIZATION. The Client confirms having personally authorized the charge in the amount and currency stated in this annex, through the payment method recorded on the order.

3. NON-DISPUTE DECLARATION. The Client declares that the charge is recognized and legitimate and agrees not to initiate a chargeback or payment dispute for the authorized amount while the contracted services are being rendered.

4. IDENTITY VERIFICATION. The identity documents and the signature reproduced in this annex were provided by the Client during intake and bind the Client to this authorization.

5. VALIDITY. This annex is generated electronically and is valid without a handwritten signature, together with the audit data recorded on it.`
